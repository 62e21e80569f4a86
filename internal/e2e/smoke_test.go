package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/bnema/tekoai-cli/internal/adapters/chatbotapi/chatbotapitest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	server := chatbotapitest.NewServer()
	defer server.Close()
	server.AddUser(chatbotapitest.User{ID: 42, Username: "ops", Email: "ops@example.com", Password: "secret"})
	server.SetBots("42", chatbotapitest.Bot{ID: 12, Name: "Sales"})
	server.SetConversation("7", "12",
		chatbotapitest.Message{ID: 1, Role: "user", Message: "where is my order?", SessionID: "s-1"},
	)

	env := []string{"HOME=" + home, "TK_API_BASE_URL=" + server.URL, "TK_NOTIFY_MODE=none"}

	_, stderr, err := runTK(t, binaryPath, env, "login", "--email", "ops@example.com", "--password", "secret")
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runTK(t, binaryPath, env, "chat", "show", "--guest", "7")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "where is my order?")

	_, stderr, err = runTK(t, binaryPath, env, "chat", "send", "--guest", "7", "on it")
	require.NoError(t, err, "stderr: %s", stderr)
	require.Len(t, server.SentMessages(), 1)
	assert.Equal(t, "on it", server.SentMessages()[0].Msg)
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "tk-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/tk")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build tk binary: %s", string(output))
	return binaryPath
}

func runTK(t *testing.T, binaryPath string, env []string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), env...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
