package cli

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillscout/internal/config"
	"skillscout/internal/sidebar"
	"skillscout/internal/store"
	ttesting "skillscout/internal/tui/testing"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	tmp := t.TempDir()
	return &config.Config{
		ConfigDir:  tmp,
		ConfigPath: filepath.Join(tmp, config.ConfigFileName),
		DataDir:    filepath.Join(tmp, "data"),
		SocketPath: filepath.Join(tmp, "sidebar.sock"),
	}
}

func TestSyncTodos_ToolInputPayload(t *testing.T) {
	cfg := testConfig(t)
	payload := `{"tool_input":{"todos":` + string(ttesting.SampleTodosJSON()) + `}}`

	require.NoError(t, syncTodos(cfg, strings.NewReader(payload)))

	var todos []sidebar.TodoItem
	require.True(t, store.New(cfg.DataDir).Load(config.TodosFileName, &todos))
	require.Len(t, todos, 3)
	assert.Equal(t, "Review pull request #42", todos[0].Content)
	assert.Equal(t, sidebar.StatusCompleted, todos[0].Status)
}

func TestSyncTodos_TopLevelTodosFallback(t *testing.T) {
	cfg := testConfig(t)
	payload := `{"todos":[{"content":"Review","status":"in_progress"}]}`

	require.NoError(t, syncTodos(cfg, strings.NewReader(payload)))

	var todos []sidebar.TodoItem
	require.True(t, store.New(cfg.DataDir).Load(config.TodosFileName, &todos))
	require.Len(t, todos, 1)
	assert.Equal(t, sidebar.StatusInProgress, todos[0].Status)
}

func TestSyncTodos_EmptyInputIsNotAnError(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, syncTodos(cfg, strings.NewReader("")))

	var todos []sidebar.TodoItem
	assert.False(t, store.New(cfg.DataDir).Load(config.TodosFileName, &todos))
}

func TestSyncTodos_NoTodosWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, syncTodos(cfg, strings.NewReader(`{"tool_input":{}}`)))

	var todos []sidebar.TodoItem
	assert.False(t, store.New(cfg.DataDir).Load(config.TodosFileName, &todos))
}

func TestSyncTodos_MalformedPayload(t *testing.T) {
	cfg := testConfig(t)
	err := syncTodos(cfg, strings.NewReader("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid hook payload")
}
