//go:build !(js && wasm)

package main

import (
	"io"
	"log"
	"os"
)

func WriteFile(name string, data []byte) {
	err := os.WriteFile(name, data, 0644)
	Check(err)
}

// LogToFile sends the log to a file instead of the terminal. The returned
// function restores the previous output and closes the file.
func LogToFile(name string) func() {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stderr)
		Check(f.Close())
	}
}
