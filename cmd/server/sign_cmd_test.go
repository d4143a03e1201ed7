package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiosync/syncserver/internal/server/auth"
)

func TestSignCmd(t *testing.T) {
	t.Setenv("STUDIO_SYNC_AUTH_SECRET", "sign-secret")

	var out bytes.Buffer
	cmd := newSignCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--project", "shop", "--timestamp", "1792065600000"})

	require.NoError(t, cmd.Execute())

	signature := auth.NewVerifier(&auth.Config{Secret: "sign-secret"}).Sign("shop", 1792065600000)
	assert.Equal(t,
		"X-Sync-Project: shop\n"+
			"X-Sync-Timestamp: 1792065600000\n"+
			"X-Sync-Signature: "+signature+"\n",
		out.String())
}

func TestSignCmd_RequiresProject(t *testing.T) {
	cmd := newSignCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	assert.Error(t, cmd.Execute())
}
