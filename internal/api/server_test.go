package api

import (
	"net"
	"testing"
)

func TestListen_SkipsTakenPort(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()
	port := taken.Addr().(*net.TCPAddr).Port

	l, err := Listen("127.0.0.1", port, 5)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	if got := l.Addr().(*net.TCPAddr).Port; got <= port || got > port+4 {
		t.Errorf("listened on %d, want a port in %d..%d", got, port+1, port+4)
	}
}

func TestListen_GivesUp(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer taken.Close()
	port := taken.Addr().(*net.TCPAddr).Port

	if l, err := Listen("127.0.0.1", port, 1); err == nil {
		l.Close()
		t.Error("expected an error when the only candidate port is taken")
	}
}
