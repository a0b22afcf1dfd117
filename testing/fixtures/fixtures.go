// Package fixtures holds the server secret and request used across tests.
// Nothing outside tests and the demo command should know the secret.
package fixtures

// Secret is the 16 byte key the vulnerable server prefixes to messages.
var Secret = []byte("supersecretkey!!")

// Message is the request the attacker observed together with its MAC.
var Message = []byte("user=alice&amount=1000")

// Suffix is the data the attacker appends.
var Suffix = []byte("&admin=true")
