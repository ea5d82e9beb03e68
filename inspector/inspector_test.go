package inspector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/pylinter/inspector"
	"github.com/viant/pylinter/inspector/python"
)

func TestFactory_GetInspector(t *testing.T) {
	tests := []struct {
		description string
		filename    string
		wantErr     bool
	}{
		{description: "python module", filename: "app/main.py"},
		{description: "python stub upper case", filename: "types/STUB.PYI"},
		{description: "unsupported", filename: "main.go", wantErr: true},
		{description: "no extension", filename: "Makefile", wantErr: true},
	}

	factory := inspector.NewFactory()
	for _, tc := range tests {
		t.Run(tc.description, func(t *testing.T) {
			actual, err := factory.GetInspector(tc.filename)
			if tc.wantErr {
				assert.Error(t, err)
				assert.Nil(t, actual)
				return
			}
			assert.NoError(t, err)
			assert.IsType(t, &python.Inspector{}, actual)
		})
	}
}
