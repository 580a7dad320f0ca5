package bad_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sghaida/patterns/behavioural/mediator/bad"
	"github.com/sghaida/patterns/internal/demotest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{
		"Alice sends: Hello everyone!",
		"[admin SYSADMIN chat] Hello everyone!",
		"SysAdmin sends: System maintenance at 3 AM",
		"[user ALICE chat] [ADMIN] System maintenance at 3 AM",
	}, demotest.Run(t, bad.Run))
}

func TestUser_SkipsItselfWhenSelfRegistered(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	env := demotest.Env(&buf)
	alice := bad.NewUser(env, "Alice")
	alice.RegisterUser(alice)

	require.NoError(t, alice.SendMessage(context.Background(), "echo?"))
	assert.Equal(t, "Alice sends: echo?\n", buf.String())
}
