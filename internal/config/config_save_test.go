package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

/* ------------------------------------------------------------------------- */
/* MOCK IMPLEMENTATIONS FOR TESTING                                          */
/* ------------------------------------------------------------------------- */

type mockMarshaler struct {
	marshalErr error
}

func (m *mockMarshaler) Marshal(v any) ([]byte, error) {
	if m.marshalErr != nil {
		return nil, m.marshalErr
	}
	return []byte("binary: brew\n"), nil
}

type mockFileOpener struct {
	openFileErr error
}

func (m *mockFileOpener) OpenFile(name string, flag int, perm os.FileMode) (*os.File, error) {
	if m.openFileErr != nil {
		return nil, m.openFileErr
	}
	return os.OpenFile(name, flag, perm)
}

type mockFileWriter struct {
	writeFileErr error
}

func (m *mockFileWriter) WriteFile(file *os.File, data []byte) (int, error) {
	if m.writeFileErr != nil {
		return 0, m.writeFileErr
	}
	return file.Write(data)
}

/* ------------------------------------------------------------------------- */
/* SAVE CONFIG                                                               */
/* ------------------------------------------------------------------------- */

func TestConfigSaver_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)
	want := Default()
	want.Timezone = `\w+`

	if err := NewConfigSaver(nil, nil, nil).SaveTo(want, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != ConfigFilePerm {
		t.Errorf("expected perm %v, got %v", ConfigFilePerm, info.Mode().Perm())
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestConfigSaver_Errors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name    string
		saver   *ConfigSaver
		wantErr string
	}{
		{"marshal", NewConfigSaver(&mockMarshaler{marshalErr: boom}, nil, nil), "failed to marshal"},
		{"open", NewConfigSaver(&mockMarshaler{}, &mockFileOpener{openFileErr: boom}, nil), "failed to open"},
		{"write", NewConfigSaver(&mockMarshaler{}, &mockFileOpener{}, &mockFileWriter{writeFileErr: boom}), "failed to write"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultConfigFile)
			err := tt.saver.SaveTo(Default(), path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
			if !errors.Is(err, boom) {
				t.Errorf("expected wrapped cause, got %v", err)
			}
		})
	}
}

func TestSaveConfigFn_WritesCommentedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFile)

	if err := SaveConfigFn(Default(), path); err != nil {
		t.Fatalf("SaveConfigFn: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), FileHeader) {
		t.Errorf("expected file to start with the header, got:\n%s", data)
	}
	if !strings.Contains(FileHeader, "# theme:    brewstamp | base | charm | dracula") {
		t.Errorf("header does not list the selectable themes:\n%s", FileHeader)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("commented file does not load: %v", err)
	}
	if !reflect.DeepEqual(got, Default()) {
		t.Errorf("expected defaults, got %+v", got)
	}
}
