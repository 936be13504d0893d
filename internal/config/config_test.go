package config

import (
    "os"
    "path/filepath"
    "testing"

    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
    t.Setenv("GOOGLE_API_KEY", "")

    cfg, err := Load("")
    require.NoError(t, err)
    assert.Equal(t, "godocx", cfg.Engine)
    assert.Equal(t, "", cfg.ScratchDir)
    assert.Equal(t, int64(DefaultMaxFileBytes), cfg.MaxFileBytes)
    assert.Equal(t, "info", cfg.Log.Level)
    assert.Equal(t, "console", cfg.Log.Format)
    assert.False(t, cfg.Caption.Enabled)
    assert.Equal(t, "gemini-2.5-flash", cfg.Caption.Model)
    assert.Equal(t, "", cfg.Caption.APIKey)
}

func TestLoadEnvOverrides(t *testing.T) {
    scratch := t.TempDir()
    t.Setenv("DOCX_EXTRACT_ENGINE", "xml")
    t.Setenv("DOCX_EXTRACT_LOG_LEVEL", "debug")
    t.Setenv("DOCX_EXTRACT_MAX_FILE_BYTES", "1024")
    t.Setenv("DOCX_EXTRACT_SCRATCH_DIR", scratch)
    t.Setenv("GOOGLE_API_KEY", "from-google")

    cfg, err := Load("")
    require.NoError(t, err)
    assert.Equal(t, "xml", cfg.Engine)
    assert.Equal(t, "debug", cfg.Log.Level)
    assert.Equal(t, int64(1024), cfg.MaxFileBytes)
    assert.Equal(t, scratch, cfg.ScratchDir)
    assert.Equal(t, "from-google", cfg.Caption.APIKey)
}

func TestLoadFile(t *testing.T) {
    path := filepath.Join(t.TempDir(), "docx-extract.yaml")
    require.NoError(t, os.WriteFile(path, []byte(`
engine: xml
max_file_bytes: 2048
log:
  level: warn
  format: json
caption:
  enabled: true
  model: gemini-2.0-flash
  api_key: file-key
`), 0o644))
    t.Setenv("DOCX_EXTRACT_LOG_LEVEL", "error")

    cfg, err := Load(path)
    require.NoError(t, err)
    assert.Equal(t, "xml", cfg.Engine)
    assert.Equal(t, int64(2048), cfg.MaxFileBytes)
    assert.Equal(t, "error", cfg.Log.Level)
    assert.Equal(t, "json", cfg.Log.Format)
    assert.True(t, cfg.Caption.Enabled)
    assert.Equal(t, "gemini-2.0-flash", cfg.Caption.Model)
    assert.Equal(t, "file-key", cfg.Caption.APIKey)
}

func TestLoadMissingFile(t *testing.T) {
    _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
    assert.Error(t, err)
}

func TestLoadInvalidEngine(t *testing.T) {
    t.Setenv("DOCX_EXTRACT_ENGINE", "pandoc")
    _, err := Load("")
    assert.Error(t, err)
}

func TestValidate(t *testing.T) {
    file := filepath.Join(t.TempDir(), "f")
    require.NoError(t, os.WriteFile(file, nil, 0o644))

    tests := []struct {
        name    string
        cfg     Config
        wantErr bool
    }{
        {name: "ok", cfg: Config{Engine: "godocx"}},
        {name: "empty engine", cfg: Config{}},
        {name: "negative limit", cfg: Config{Engine: "xml", MaxFileBytes: -1}, wantErr: true},
        {name: "missing scratch", cfg: Config{ScratchDir: filepath.Join(file, "x")}, wantErr: true},
        {name: "scratch is file", cfg: Config{ScratchDir: file}, wantErr: true},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            err := tt.cfg.Validate()
            if tt.wantErr {
                assert.Error(t, err)
            } else {
                assert.NoError(t, err)
            }
        })
    }
}
