package message

import (
	"math/rand"

	"github.com/jacobpatterson1549/selene-mosaic/server/log"
)

// Send is a utility function for sending messages on out.
// When debugging, it prints a message before and after the message is sent to help identify deadlocks.
func Send(m Message, out chan<- Message, debug bool, log log.Logger) {
	if debug {
		id := rand.Int()
		log.Printf("[id: %v] sending message: %v", id, m.Type)
		defer log.Printf("[id: %v] message sent", id)
	}
	out <- m
}
