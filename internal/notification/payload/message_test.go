package payload

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

func basePayload() *RequestEventPayload {
	return &RequestEventPayload{
		RequestID:     "req_01",
		RequestNumber: "REQ-20250115-X4K9QZ",
		ApplicantName: "Siti Aminah",
		Phone:         "081234567890",
		ServiceType:   types.ServiceTypeKTP,
		NewStatus:     types.RequestStatusPending,
	}
}

func TestComposeMessageCreated(t *testing.T) {
	msg := ComposeMessage(types.EventRequestCreated, basePayload())

	assert.Contains(t, msg, "Halo Siti Aminah")
	assert.Contains(t, msg, "telah kami terima")
	assert.Contains(t, msg, "Nomor Permohonan: REQ-20250115-X4K9QZ")
	assert.Contains(t, msg, "Jenis Layanan: "+types.ServiceTypeKTP.Display())
	assert.Contains(t, msg, "Status: "+types.RequestStatusPending.Display())
	assert.Contains(t, msg, "Pemerintah Desa Tempursari")
	assert.NotContains(t, msg, "Catatan petugas")
}

func TestComposeMessageStatusChange(t *testing.T) {
	payload := basePayload()
	payload.OldStatus = types.RequestStatusPending
	payload.NewStatus = types.RequestStatusOnProcess

	msg := ComposeMessage(types.EventRequestStatusChanged, payload)

	assert.Contains(t, msg, "pembaruan status")
	assert.Contains(t, msg, "sedang diproses")
}

func TestComposeMessageCompletedRepeatsRequestNumber(t *testing.T) {
	payload := basePayload()
	payload.NewStatus = types.RequestStatusCompleted

	msg := ComposeMessage(types.EventRequestStatusChanged, payload)

	assert.Contains(t, msg, "dapat diambil di kantor desa")
	// the pickup guidance repeats the request number verbatim
	assert.Contains(t, msg, "nomor permohonan REQ-20250115-X4K9QZ")
}

func TestComposeMessageCancelled(t *testing.T) {
	payload := basePayload()
	payload.NewStatus = types.RequestStatusCancelled

	msg := ComposeMessage(types.EventRequestStatusChanged, payload)

	assert.Contains(t, msg, "dibatalkan")
	assert.Contains(t, msg, "hubungi kantor desa")
}

func TestComposeMessageWithNotes(t *testing.T) {
	payload := basePayload()
	payload.NewStatus = types.RequestStatusCancelled
	payload.Notes = "Berkas KTP lama belum dilampirkan"

	msg := ComposeMessage(types.EventRequestStatusChanged, payload)

	assert.Contains(t, msg, "Catatan petugas: Berkas KTP lama belum dilampirkan")
}

func TestParseRequestEventPayload(t *testing.T) {
	raw, err := json.Marshal(basePayload())
	require.NoError(t, err)

	payload, err := ParseRequestEventPayload(raw)
	require.NoError(t, err)
	assert.Equal(t, "REQ-20250115-X4K9QZ", payload.RequestNumber)
	assert.Equal(t, types.ServiceTypeKTP, payload.ServiceType)

	_, err = ParseRequestEventPayload([]byte("not-json"))
	require.Error(t, err)
}
