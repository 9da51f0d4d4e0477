package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/nqhuy/kanban-server/internal/mocks"
)

func TestHTTPServer_Address(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), ":5001")
	assert.Equal(t, ":5001", s.Address())
}

func TestHTTPServer_Stop(t *testing.T) {
	s := NewHTTPServer(http.NewServeMux(), ":0")
	err := s.Stop(context.Background())
	assert.NoError(t, err)
}

func TestHTTPServer_Start_ListensAndServes(t *testing.T) {
	t.Parallel()

	srv := NewHTTPServer(http.NewServeMux(), ":0")
	sec := mocks.NewSecurityLayer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	done := make(chan struct{})
	sec.On("Listen", "tcp", ":0").Return(ln, nil).Run(func(args mock.Arguments) { close(done) })

	go func() { _ = srv.Start(sec) }()
	<-done
	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, srv.Stop(context.Background()))
}

func TestHTTPServer_Start_ListenError(t *testing.T) {
	t.Parallel()

	srv := NewHTTPServer(http.NewServeMux(), ":0")
	sec := mocks.NewSecurityLayer(t)
	sec.On("Listen", "tcp", ":0").Return(nil, net.ErrClosed)

	err := srv.Start(sec)
	assert.Error(t, err)
}
