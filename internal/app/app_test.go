package app

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/alimikegami/point-of-sales/gaming-store-service/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	return fmt.Sprint(listener.Addr().(*net.TCPAddr).Port)
}

func TestAppLifecycleWithMemoryStore(t *testing.T) {
	conf := &config.Config{
		ServicePort: freePort(t),
		MetricsPort: freePort(t),
		GRPCPort:    freePort(t),
		LogLevel:    "error",
		StoreDriver: config.StoreDriverMemory,
	}

	server := App{Config: conf}
	assert.ErrorIs(t, server.Ready(context.Background()), ErrNotReady)

	require.NoError(t, server.Start())
	assert.NoError(t, server.Ready(context.Background()))

	var res *http.Response
	require.Eventually(t, func() bool {
		var err error
		res, err = http.Get(fmt.Sprintf("http://127.0.0.1:%s/api/categories", conf.ServicePort))
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, `{"categories":["casques","claviers","consoles","jeux","manettes","souris"]}`, string(body))

	assert.NoError(t, server.StopServer())
	assert.ErrorIs(t, server.Ready(context.Background()), ErrNotReady)
}
