package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleProbe = `{
  "streams": [
    {"index": 0, "codec_type": "video", "codec_name": "h264", "width": 1280, "height": 720, "duration": "30.000000"},
    {"index": 1, "codec_type": "audio", "codec_name": "aac", "duration": "30.023220"}
  ],
  "format": {"format_name": "mov,mp4,m4a,3gp,3g2,mj2", "duration": "30.023220", "size": "1048576", "nb_streams": 2}
}`

func TestParseProbeJSON(t *testing.T) {
	result, err := ParseProbeJSON([]byte(sampleProbe))
	require.NoError(t, err)

	assert.InDelta(t, 30.02322, result.DurationSeconds(), 0.000001)
	w, h := result.Dimensions()
	assert.Equal(t, 1280, w)
	assert.Equal(t, 720, h)
	assert.Equal(t, "h264", result.VideoStream().CodecName)
}

func TestParseProbeJSON_Invalid(t *testing.T) {
	_, err := ParseProbeJSON([]byte("not json"))
	assert.Error(t, err)
}

func TestProbeResult_DurationFallsBackToStreams(t *testing.T) {
	result := &ProbeResult{
		Format: ProbeFormat{Duration: "N/A"},
		Streams: []ProbeStream{
			{CodecType: "audio", Duration: "4.5"},
			{CodecType: "video", Duration: "5.25"},
		},
	}
	assert.Equal(t, 5.25, result.DurationSeconds())

	empty := &ProbeResult{}
	assert.Zero(t, empty.DurationSeconds())
	assert.Nil(t, empty.VideoStream())
	w, h := empty.Dimensions()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 0.0, ParseDuration(""))
	assert.Equal(t, 0.0, ParseDuration("N/A"))
	assert.Equal(t, 0.0, ParseDuration("abc"))
	assert.Equal(t, 0.0, ParseDuration("-3"))
	assert.Equal(t, 12.5, ParseDuration("12.5"))
	assert.Equal(t, 0.0, ParseDuration("inf"))
	assert.Equal(t, 0.0, ParseDuration("+Inf"))
	assert.Equal(t, 0.0, ParseDuration("NaN"))
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00.000"},
		{-1, "00:00:00.000"},
		{3.0023, "00:00:03.002"},
		{61.5, "00:01:01.500"},
		{3725.25, "01:02:05.250"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTimestamp(tt.seconds))
	}
}
