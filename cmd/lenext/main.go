// Command lenext forges SHA256(secret || message) MACs by length extension.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}
	switch args[0] {
	case "forge":
		return runForge(args[1:], stdout, stderr)
	case "demo":
		return runDemo(args[1:], stdout, stderr)
	case "search":
		return runSearch(args[1:], stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command: %s\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: lenext <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  forge   Forge a MAC for message || glue || suffix")
	fmt.Fprintln(w, "  demo    Run the attack against a local secret-prefix MAC and HMAC")
	fmt.Fprintln(w, "  search  Recover the secret length against a local oracle")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintln(w, "  lenext forge -message 'user=alice&amount=1000' -mac <hex> -append '&admin=true' -secret-len 16")
	fmt.Fprintln(w, "  lenext forge -config scenario.json -car forgery.car")
	fmt.Fprintln(w, "  lenext demo -log-level debug")
	fmt.Fprintln(w, "  lenext search -secret hunter2 -max 32")
}
