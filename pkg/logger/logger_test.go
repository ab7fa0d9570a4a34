package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestComponenteMarcaCadaLinea(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zl: zerolog.New(&buf)}

	l.Componente("cache").Warn().Msg("revalidación falló")

	assert.Contains(t, buf.String(), `"componente":"cache"`)
	assert.Contains(t, buf.String(), "revalidación falló")
}

func TestNopNoEscribeNada(t *testing.T) {
	// No debe entrar en pánico ni escribir a stdout.
	Nop().Componente("poller").Error().Msg("descartado")
}
