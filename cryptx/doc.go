// Package cryptx provides the checksum and secret-generation helpers shell
// scripts get from md5sum, sha256sum, `openssl rand -hex`, and
// `htpasswd -B`:
//
//	sum, _ := cryptx.SHA256Sum("backup.tar")
//	hexid, _ := cryptx.RandomHex(16)
//	hash, _ := cryptx.HashPassword("s3cret")
//	ok, _ := cryptx.CheckPassword("s3cret", hash)
//
// Password hashing uses bcrypt (golang.org/x/crypto/bcrypt) with a work
// factor of 12, the Modular Crypt Format understood by htpasswd and most web
// stacks.
//
// MD5 is provided for integrity checks against existing .md5 manifests
// only; it is not collision-resistant and must never be used for passwords
// or signatures.
package cryptx
