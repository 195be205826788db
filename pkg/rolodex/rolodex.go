// Package rolodex holds module-wide metadata shared by the CLI and server.
package rolodex

// Version is the rolodex release version, printed by `rolodex version`
// and reported by the root command's --version flag.
const Version = "0.1.0"
