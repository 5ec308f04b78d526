package singleton

import "fmt"

var naiveDials int

// Dial is the without-pattern rendition: every caller constructs a fresh
// pool with whatever host:port it believes is correct, so two services can
// silently end up on different databases.
func Dial(host string, port int) *Pool {
	naiveDials++
	p := &Pool{host: host, port: port}
	fmt.Fprintf(Out, "Connection #%d created -> %s\n", naiveDials, p.Addr())
	return p
}

// DialCount reports how many pools were dialed through Dial.
func DialCount() int { return naiveDials }
