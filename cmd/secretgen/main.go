// The secretgen command hashes the shared booking secret for the
// SECRET_HASH configuration entry. Run it once when provisioning, put
// the output in the server's environment, hand the plain secret to the
// chat-side integration.
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"booking-lab/auth"
)

func main() {
	fmt.Print("New booking secret: ")
	reader := bufio.NewReader(os.Stdin)
	secret, err := reader.ReadString('\n')
	if err != nil {
		log.Fatalf("Failed to read secret: %v", err)
	}
	secret = strings.TrimSpace(secret)

	if err := auth.ValidateNewSecret(secret); err != nil {
		log.Fatal("Secret rejected: need 12-72 chars with upper, lower, digit and special")
	}

	hash, err := auth.HashSecret(secret)
	if err != nil {
		log.Fatalf("Hashing failed: %v", err)
	}

	fmt.Printf("\nSECRET_HASH=%s\n", hash)
}
