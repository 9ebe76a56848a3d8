package main

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBindServe_EnvDefaultsAndFlags(t *testing.T) {
	t.Setenv("MICROMUU_ADDR", ":9000")
	t.Setenv("MICROMUU_TOKEN_TTL", "30m")
	t.Setenv("MICROMUU_LIMIT_ATTEMPTS", "3")
	t.Setenv("MICROMUU_INSECURE", "true")
	t.Setenv("MICROMUU_STORE", "mongo")
	t.Setenv("MICROMUU_LINK_TTL", "not-a-duration")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := bindServe(fs)
	require.NoError(t, fs.Parse([]string{"--jwt-key", "k", "--limit-attempts", "7"}))

	require.Equal(t, ":9000", c.addr)
	require.Equal(t, 30*time.Minute, c.tokenTTL)
	require.Equal(t, time.Hour, c.linkTTL)
	require.Equal(t, 7, c.limitAttempts)
	require.True(t, c.insecure)
	require.Equal(t, "mongo", c.store)
	require.Equal(t, "k", c.jwtKey)
	require.Empty(t, c.s3Bucket)
}
