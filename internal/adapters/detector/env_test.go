package detector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dcmget/internal/adapters/detector"
	"go.trai.ch/dcmget/internal/core/domain"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		isTTY    bool
		ci       string
		expected detector.OutputMode
	}{
		{name: "terminal without CI", isTTY: true, ci: "", expected: detector.ModeTTY},
		{name: "terminal with CI=true", isTTY: true, ci: "true", expected: detector.ModePipe},
		{name: "terminal with CI=1", isTTY: true, ci: "1", expected: detector.ModePipe},
		{name: "terminal with CI=false", isTTY: true, ci: "false", expected: detector.ModeTTY},
		{name: "not a terminal", isTTY: false, ci: "", expected: detector.ModePipe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, detector.Detect(tt.isTTY, tt.ci))
		})
	}
}

func TestDetectEnvironment_CI(t *testing.T) {
	t.Setenv("CI", "true")
	assert.Equal(t, detector.ModePipe, detector.DetectEnvironment())
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		configured string
		detected   detector.OutputMode
		expected   detector.OutputMode
	}{
		{"tty", detector.ModePipe, detector.ModeTTY},
		{"pipe", detector.ModeTTY, detector.ModePipe},
		{"auto", detector.ModeTTY, detector.ModeTTY},
		{"", detector.ModePipe, detector.ModePipe},
	}

	for _, tt := range tests {
		t.Run(tt.configured, func(t *testing.T) {
			got, err := detector.ResolveMode(tt.detected, tt.configured)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := detector.ResolveMode(detector.ModeTTY, "fancy")
	require.ErrorIs(t, err, domain.ErrInvalidOutputMode)
}

func TestOutputMode_String(t *testing.T) {
	assert.Equal(t, "tty", detector.ModeTTY.String())
	assert.Equal(t, "pipe", detector.ModePipe.String())
	assert.Equal(t, "auto", detector.ModeAuto.String())
}
