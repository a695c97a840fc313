package pathx_test

import (
	"fmt"

	"github.com/shellkit/go-shell-utils/pathx"
)

func ExampleBasename() {
	fmt.Println(pathx.Basename("/var/log/syslog.1"))
	// Output: syslog.1
}

func ExampleStem() {
	fmt.Println(pathx.Stem("/var/log/app.log"))
	fmt.Println(pathx.Stem("archive.tar.gz"))
	// Output:
	// app
	// archive.tar
}

func ExampleHasExt() {
	fmt.Println(pathx.HasExt("photo.JPEG", "jpeg"))
	// Output: true
}
