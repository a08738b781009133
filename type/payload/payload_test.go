package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sunthewhat/cert-overlay-api/common/util"
)

func TestFlexInt_Unmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{"number", `72`, 72, false},
		{"numeric string", `"48"`, 48, false},
		{"fraction truncates", `12.9`, 12, false},
		{"negative fraction truncates toward zero", `-3.7`, -3, false},
		{"word", `"big"`, 0, true},
		{"boolean", `true`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexInt
			err := json.Unmarshal([]byte(tt.input), &f)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, FlexInt(tt.expected), f)
		})
	}
}

func TestCertificateTextPayload_Defaults(t *testing.T) {
	var p CertificateTextPayload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	p.ApplyDefaults()

	assert.Equal(t, DefaultSampleName, p.Name)
	assert.Equal(t, FlexInt(72), *p.FontSize)
	assert.Equal(t, FlexInt(300), *p.TextX)
	assert.Equal(t, FlexInt(400), *p.TextY)
	assert.JSONEq(t, `[0,0,0]`, string(p.Color))
}

func TestCertificateTextPayload_KeepsProvidedValues(t *testing.T) {
	var p GenerateCertificatesPayload
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Jane","fontSize":"30","color":"#ff0000","textX":0,"textY":5,"attend":true}`), &p))
	p.ApplyDefaults()

	assert.Equal(t, "Jane", p.Name)
	assert.Equal(t, FlexInt(30), *p.FontSize)
	assert.Equal(t, FlexInt(0), *p.TextX)
	assert.Equal(t, `"#ff0000"`, string(p.Color))
	require.NotNil(t, p.Attend)
	assert.True(t, *p.Attend)
	assert.Nil(t, p.Selected)
}

func TestCertificateTextPayload_RejectsNonPositiveFontSize(t *testing.T) {
	p := CertificateTextPayload{FontSize: flexInt(0)}
	p.ApplyDefaults()
	assert.Error(t, util.ValidateStruct(p))
}

func TestSendEmailPayload_Validation(t *testing.T) {
	valid := SendEmailPayload{To: []string{"a@example.com"}, Usernames: []string{"a"}}
	assert.NoError(t, util.ValidateStruct(valid))

	mismatched := SendEmailPayload{To: []string{"a@example.com", "b@example.com"}, Usernames: []string{"a"}}
	assert.Error(t, util.ValidateStruct(mismatched))

	badEmail := SendEmailPayload{To: []string{"nope"}, Usernames: []string{"a"}}
	assert.Error(t, util.ValidateStruct(badEmail))

	assert.Error(t, util.ValidateStruct(SendEmailPayload{}))
}
