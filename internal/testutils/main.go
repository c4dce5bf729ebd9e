package testutils

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"testing"
)

// RunMain runs a package's tests and tears down the shared containers afterwards,
// including when the run is interrupted. Call it from TestMain:
//
//	func TestMain(m *testing.M) { os.Exit(testutils.RunMain(m, "repository")) }
func RunMain(m *testing.M, name string) int {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	go func() {
		<-c
		log.Printf("%s tests interrupted, cleaning up Docker containers...", name)
		CleanupSharedContainer()
		os.Exit(1)
	}()

	log.Printf("Starting %s integration tests...", name)
	code := m.Run()

	log.Printf("%s tests finished, cleaning up Docker containers...", name)
	CleanupSharedContainer()
	return code
}
