package payload

import (
	"fmt"
	"strings"

	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// ComposeMessage renders the WhatsApp text for a request event. The
// tone and wording follow the village office announcements: a greeting,
// the request summary, a status block with guidance, and the operator
// notes when present.
func ComposeMessage(eventName string, payload *RequestEventPayload) string {
	var b strings.Builder

	switch eventName {
	case types.EventRequestCreated:
		fmt.Fprintf(&b, "Halo %s,\n\n", payload.ApplicantName)
		b.WriteString("Permohonan layanan Anda telah kami terima.\n\n")
	default:
		fmt.Fprintf(&b, "Halo %s,\n\n", payload.ApplicantName)
		b.WriteString("Ada pembaruan status untuk permohonan layanan Anda.\n\n")
	}

	fmt.Fprintf(&b, "Nomor Permohonan: %s\n", payload.RequestNumber)
	fmt.Fprintf(&b, "Jenis Layanan: %s\n", payload.ServiceType.Display())
	fmt.Fprintf(&b, "Status: %s\n", payload.NewStatus.Display())

	if guidance := statusGuidance(payload); guidance != "" {
		b.WriteString("\n")
		b.WriteString(guidance)
		b.WriteString("\n")
	}

	if payload.Notes != "" {
		fmt.Fprintf(&b, "\nCatatan petugas: %s\n", payload.Notes)
	}

	b.WriteString("\nTerima kasih,\nPemerintah Desa Tempursari")
	return b.String()
}

func statusGuidance(payload *RequestEventPayload) string {
	switch payload.NewStatus {
	case types.RequestStatusOnProcess:
		return "Permohonan Anda sedang diproses oleh petugas. Kami akan mengabari Anda kembali setelah selesai."
	case types.RequestStatusCompleted:
		return fmt.Sprintf(
			"Dokumen Anda telah selesai dan dapat diambil di kantor desa pada jam kerja. Mohon tunjukkan nomor permohonan %s saat pengambilan.",
			payload.RequestNumber,
		)
	case types.RequestStatusCancelled:
		return "Permohonan Anda dibatalkan. Silakan hubungi kantor desa untuk informasi lebih lanjut."
	default:
		return ""
	}
}
