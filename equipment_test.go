package funcdemo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsExisting(t *testing.T) {
	tests := []struct {
		name      string
		equipment Equipment
		wantType  string
		wantExist bool
	}{
		{"closure uses default", Closure{}, "Closure", false},
		{"existing manhole overrides", ExistingManHole{}, "ManHole", true},
		{"function binding uses default", EquipmentFunc(func() string { return "Valve" }), "Valve", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantType, tt.equipment.EquipmentType())
			assert.Equal(t, tt.wantExist, IsExisting(tt.equipment))
		})
	}
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Print(&buf, Closure{}))
	require.NoError(t, Print(&buf, ExistingManHole{}))

	assert.Equal(t, "Closure (false)\nManHole (true)\n", buf.String())
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestPrint_WriteError(t *testing.T) {
	boom := errors.New("disk full")

	err := Print(failingWriter{err: boom}, Closure{})

	assert.ErrorIs(t, err, boom)
}

func TestCreateEquipment_DefersConstruction(t *testing.T) {
	built := 0
	supplier := SupplierFunc[Equipment](func() Equipment {
		built++
		return ExistingManHole{}
	})
	assert.Equal(t, 0, built)

	e := CreateEquipment(supplier)

	assert.Equal(t, 1, built)
	assert.Equal(t, ExistingManHole{}, e)
}
