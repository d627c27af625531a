// file: internals/features/organization/cabinets/service/structure_service.go
package service

import (
	"bytes"
	"sort"
	"strings"

	"github.com/bytedance/sonic"

	"ukmfilm_backend/internals/constants"
	"ukmfilm_backend/internals/features/organization/cabinets/model"
	divisionModel "ukmfilm_backend/internals/features/organization/divisions/model"
)

/* =========================================================
   Struktur organisasi (turunan, tidak disimpan)
========================================================= */

type slotKind int

const (
	slotUnknown slotKind = iota
	slotKetua
	slotWakilKetua
	slotSekretaris
	slotBendahara
)

var slotLabels = map[slotKind]string{
	slotKetua:      "Ketua",
	slotWakilKetua: "Wakil Ketua",
	slotSekretaris: "Sekretaris",
	slotBendahara:  "Bendahara",
}

// Slot: satu posisi di struktur; kosong = sentinel "Data Kosong".
type Slot struct {
	Name        string `json:"name"`
	Position    string `json:"position"`
	Image       string `json:"image"`
	Description string `json:"description"`

	filled bool
}

func emptySlot(kind slotKind) Slot {
	return Slot{
		Name:        constants.EmptySlotText,
		Position:    slotLabels[kind],
		Image:       "",
		Description: constants.EmptySlotText,
	}
}

// IsEmpty: masih sentinel?
func (s Slot) IsEmpty() bool { return !s.filled }

type DivisionStructure struct {
	Ketua      Slot  `json:"ketua"`
	WakilKetua Slot  `json:"wakilKetua"`
	Sekretaris Slot  `json:"sekretaris"`
	Bendahara  *Slot `json:"bendahara,omitempty"` // hanya humi
}

func newDivisionStructure(code string) *DivisionStructure {
	d := &DivisionStructure{
		Ketua:      emptySlot(slotKetua),
		WakilKetua: emptySlot(slotWakilKetua),
		Sekretaris: emptySlot(slotSekretaris),
	}
	if code == constants.DivisionCodeHumi {
		b := emptySlot(slotBendahara)
		d.Bendahara = &b
	}
	return d
}

func (d *DivisionStructure) slot(kind slotKind) *Slot {
	switch kind {
	case slotKetua:
		return &d.Ketua
	case slotWakilKetua:
		return &d.WakilKetua
	case slotSekretaris:
		return &d.Sekretaris
	case slotBendahara:
		return d.Bendahara
	}
	return nil
}

// Structure: { ketua, wakilKetua, <division_code>: {...} }
type Structure struct {
	Ketua      Slot
	WakilKetua Slot
	Divisions  map[string]*DivisionStructure
	// urutan kode divisi sesuai katalog
	Order []string
}

// MarshalJSON meratakan Divisions ke level atas dengan urutan:
// ketua, wakilKetua, lalu divisi sesuai Order. Key ketua/wakilKetua menang jika bentrok.
func (s *Structure) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	write := func(key string, v any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := sonic.ConfigStd.Marshal(key)
		if err != nil {
			return err
		}
		b, err := sonic.ConfigStd.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(b)
		return nil
	}

	if err := write("ketua", s.Ketua); err != nil {
		return nil, err
	}
	if err := write("wakilKetua", s.WakilKetua); err != nil {
		return nil, err
	}

	seen := map[string]bool{"ketua": true, "wakilKetua": true}
	for _, code := range s.Order {
		d, ok := s.Divisions[code]
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		if err := write(code, d); err != nil {
			return nil, err
		}
	}
	// divisi di luar Order (Structure dirakit manual) → alfabetis
	rest := make([]string, 0)
	for code := range s.Divisions {
		if !seen[code] {
			rest = append(rest, code)
		}
	}
	sort.Strings(rest)
	for _, code := range rest {
		if err := write(code, s.Divisions[code]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Alasan anggota tidak tampil di struktur
const (
	ReasonUnknownDivision        = "unknown_division"
	ReasonUnclassifiedLeadership = "unclassified_leadership"
	ReasonSlotTaken              = "slot_taken"
	ReasonDivisionFull           = "division_full"
)

type UnplacedMember struct {
	MemberID     string `json:"member_id"`
	Name         string `json:"name"`
	Position     string `json:"position"`
	DivisionCode string `json:"division_code,omitempty"`
	Reason       string `json:"reason"`
}

/* =========================================================
   Resolver
========================================================= */

// ResolveStructure memetakan anggota kabinet ke slot tetap. nil jika cabinet nil.
// Anggota diproses sesuai urutan cabinet.Members; slot yang sudah terisi tidak ditimpa.
func ResolveStructure(cabinet *model.CabinetModel, divisions []divisionModel.DivisionModel) *Structure {
	st, _ := ResolveStructureWithDiagnostics(cabinet, divisions)
	return st
}

// ResolveStructureWithDiagnostics sama dengan ResolveStructure, plus daftar anggota yang terbuang.
func ResolveStructureWithDiagnostics(cabinet *model.CabinetModel, divisions []divisionModel.DivisionModel) (*Structure, []UnplacedMember) {
	if cabinet == nil {
		return nil, nil
	}

	st := &Structure{
		Ketua:      emptySlot(slotKetua),
		WakilKetua: emptySlot(slotWakilKetua),
		Divisions:  make(map[string]*DivisionStructure, len(divisions)),
		Order:      make([]string, 0, len(divisions)),
	}
	for _, d := range divisions {
		code := divisionModel.NormalizeCode(d.DivisionCode)
		if code == "" || code == constants.DivisionCodeKetuaUmum || code == constants.DivisionCodeWakilKetuaUmum {
			continue
		}
		if _, dup := st.Divisions[code]; dup {
			continue
		}
		st.Divisions[code] = newDivisionStructure(code)
		st.Order = append(st.Order, code)
	}

	unplaced := make([]UnplacedMember, 0)
	for i := range cabinet.Members {
		m := &cabinet.Members[i]
		code := ""
		if m.Division != nil {
			code = divisionModel.NormalizeCode(m.Division.DivisionCode)
		}
		if reason := st.place(m, code); reason != "" {
			unplaced = append(unplaced, UnplacedMember{
				MemberID:     m.MemberID.String(),
				Name:         m.MemberName,
				Position:     m.MemberPosition,
				DivisionCode: code,
				Reason:       reason,
			})
		}
	}
	return st, unplaced
}

// place mengembalikan alasan jika anggota tidak mendapat slot.
func (st *Structure) place(m *model.MemberModel, code string) string {
	kind := classifyPosition(m.MemberPosition)

	if isLeadershipCode(code) {
		var target *Slot
		switch kind {
		case slotKetua:
			target = &st.Ketua
		case slotWakilKetua:
			target = &st.WakilKetua
		default:
			return ReasonUnclassifiedLeadership
		}
		if !fill(target, m) {
			return ReasonSlotTaken
		}
		return ""
	}

	div, ok := st.Divisions[code]
	if !ok {
		return ReasonUnknownDivision
	}

	// bendahara di luar humi tidak punya slot → first-fit
	if kind == slotBendahara && div.Bendahara == nil {
		kind = slotUnknown
	}
	if kind != slotUnknown {
		if !fill(div.slot(kind), m) {
			return ReasonSlotTaken
		}
		return ""
	}

	for _, k := range []slotKind{slotKetua, slotWakilKetua, slotSekretaris, slotBendahara} {
		if s := div.slot(k); s != nil && fill(s, m) {
			return ""
		}
	}
	return ReasonDivisionFull
}

func fill(s *Slot, m *model.MemberModel) bool {
	if s == nil || s.filled {
		return false
	}
	*s = Slot{
		Name:        m.MemberName,
		Position:    m.MemberPosition,
		Image:       derefOr(m.MemberImageURL, ""),
		Description: derefOr(m.MemberDescription, ""),
		filled:      true,
	}
	return true
}

func isLeadershipCode(code string) bool {
	switch code {
	case constants.DivisionCodeKetuaUmum, constants.DivisionCodeLeadership, constants.DivisionCodeWakilKetuaUmum:
		return true
	}
	return false
}

// classifyPosition: substring match pada jabatan (lower-case).
func classifyPosition(position string) slotKind {
	p := strings.ToLower(position)
	switch {
	case strings.Contains(p, "ketua") && strings.Contains(p, "wakil"):
		return slotWakilKetua
	case strings.Contains(p, "ketua"):
		return slotKetua
	case strings.Contains(p, "sekretaris"):
		return slotSekretaris
	case strings.Contains(p, "bendahara"):
		return slotBendahara
	}
	return slotUnknown
}

func derefOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
