// Package envx provides environment-variable helpers covering the two shell
// conventions every script leans on: sourcing a .env file and reading
// variables with defaults.
//
//	_ = envx.Load()                       // source ./.env if present
//	port := envx.Get("PORT", "8080")      // ${PORT:-8080}
//	debug := envx.Bool("DEBUG", false)
//	key, err := envx.Require("API_KEY")   // ${API_KEY:?}
//
// File loading is delegated to github.com/joho/godotenv. [Load] never
// overrides variables already present in the process environment;
// [Overload] does.
package envx
