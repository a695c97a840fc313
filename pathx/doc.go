// Package pathx provides file-path manipulation helpers mirroring the
// everyday shell utilities basename, dirname, realpath, and file:
//
//	pathx.Basename("/var/log/syslog.1")  // "syslog.1"
//	pathx.Stem("/var/log/app.log")       // "app"
//	pathx.Expand("~/notes.txt")          // "/home/alice/notes.txt"
//	pathx.MimeType("photo.jpeg")         // "image/jpeg"
//
// All helpers are pure except the filesystem probes (Exists, IsFile, IsDir),
// Expand (reads the current user's home directory), and the content-sniffing
// fallback of MimeType.
//
// Portability note: Basename/Dirname match their POSIX namesakes, including
// the treatment of trailing separators; MimeType is `file --mime-type` with
// an extension table consulted first.
package pathx
