package constants

// Kode divisi khusus untuk pimpinan umum (ketua & wakil ketua umum).
const (
	DivisionCodeLeadership     = "leadership"
	DivisionCodeKetuaUmum      = "ketua_umum"
	DivisionCodeWakilKetuaUmum = "wakil_ketua_umum"
	DivisionCodeHumi           = "humi"
)

const (
	CabinetStatusActive   = "active"
	CabinetStatusInactive = "inactive"
)

// EmptySlotText dipakai untuk slot struktur yang belum terisi.
const EmptySlotText = "Data Kosong"
