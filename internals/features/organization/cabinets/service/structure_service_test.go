package service

import (
	"bytes"
	"encoding/json"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ukmfilm_backend/internals/constants"
	"ukmfilm_backend/internals/features/organization/cabinets/model"
	divisionModel "ukmfilm_backend/internals/features/organization/divisions/model"
)

func division(code, name string) divisionModel.DivisionModel {
	return divisionModel.DivisionModel{DivisionID: uuid.New(), DivisionCode: code, DivisionName: name}
}

func member(name, position string, div *divisionModel.DivisionModel) model.MemberModel {
	m := model.MemberModel{MemberID: uuid.New(), MemberName: name, MemberPosition: position, Division: div}
	if div != nil {
		m.MemberDivisionID = div.DivisionID
	}
	return m
}

func catalog() (leadership, humi, anf divisionModel.DivisionModel) {
	return division("leadership", "Pimpinan"), division("humi", "HUMI"), division("anf", "ANF")
}

func decode(t *testing.T, st *Structure) map[string]json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(st)
	require.NoError(t, err)
	out := map[string]json.RawMessage{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func keys[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func TestResolveStructure_NilCabinet(t *testing.T) {
	st, unplaced := ResolveStructureWithDiagnostics(nil, nil)
	assert.Nil(t, st)
	assert.Nil(t, unplaced)
	assert.Nil(t, ResolveStructure(nil, nil))
}

func TestResolveStructure_TemplateKeys(t *testing.T) {
	leadership, humi, anf := catalog()
	cases := []struct {
		name    string
		members []model.MemberModel
	}{
		{"empty", nil},
		{"mixed", []model.MemberModel{
			member("Ani", "Ketua", &leadership),
			member("Budi", "Staff", &anf),
			member("Cici", "Bendahara", &humi),
			member("Dodi", "Anggota", nil),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cab := &model.CabinetModel{Members: tc.members}
			st := ResolveStructure(cab, []divisionModel.DivisionModel{leadership, humi, anf})
			require.NotNil(t, st)

			top := decode(t, st)
			assert.Equal(t, []string{"anf", "humi", "ketua", "leadership", "wakilKetua"}, keys(top))

			for _, code := range []string{"anf", "leadership"} {
				sub := map[string]json.RawMessage{}
				require.NoError(t, json.Unmarshal(top[code], &sub))
				assert.Equal(t, []string{"ketua", "sekretaris", "wakilKetua"}, keys(sub), code)
			}
			sub := map[string]json.RawMessage{}
			require.NoError(t, json.Unmarshal(top["humi"], &sub))
			assert.Equal(t, []string{"bendahara", "ketua", "sekretaris", "wakilKetua"}, keys(sub))
		})
	}
}

func TestResolveStructure_SentinelWhenEmpty(t *testing.T) {
	leadership, humi, anf := catalog()
	st := ResolveStructure(&model.CabinetModel{}, []divisionModel.DivisionModel{leadership, humi, anf})

	all := []Slot{st.Ketua, st.WakilKetua}
	for _, code := range st.Order {
		d := st.Divisions[code]
		all = append(all, d.Ketua, d.WakilKetua, d.Sekretaris)
		if d.Bendahara != nil {
			all = append(all, *d.Bendahara)
		}
	}
	require.Len(t, all, 2+3+4+3)
	for _, s := range all {
		assert.True(t, s.IsEmpty())
		assert.Equal(t, constants.EmptySlotText, s.Name)
		assert.Equal(t, constants.EmptySlotText, s.Description)
		assert.Equal(t, "", s.Image)
	}
	assert.Equal(t, "Bendahara", st.Divisions["humi"].Bendahara.Position)
}

func TestResolveStructure_FirstWriteWins(t *testing.T) {
	_, humi, _ := catalog()
	cab := &model.CabinetModel{Members: []model.MemberModel{
		member("Pertama", "Sekretaris HUMI", &humi),
		member("Kedua", "Sekretaris", &humi),
	}}

	st, unplaced := ResolveStructureWithDiagnostics(cab, []divisionModel.DivisionModel{humi})
	assert.Equal(t, "Pertama", st.Divisions["humi"].Sekretaris.Name)
	assert.True(t, st.Divisions["humi"].Ketua.IsEmpty())
	require.Len(t, unplaced, 1)
	assert.Equal(t, "Kedua", unplaced[0].Name)
	assert.Equal(t, ReasonSlotTaken, unplaced[0].Reason)
}

func TestResolveStructure_LeadershipAliases(t *testing.T) {
	ketuaUmum := division("ketua_umum", "Ketua Umum")
	leadership := division("leadership", "Pimpinan")
	cab := &model.CabinetModel{Members: []model.MemberModel{
		member("Ani", "Wakil Ketua Umum", &ketuaUmum),
		member("Budi", "Ketua Umum", &leadership),
		member("Cici", "Penasehat", &leadership),
	}}

	st, unplaced := ResolveStructureWithDiagnostics(cab, []divisionModel.DivisionModel{ketuaUmum, leadership})
	assert.Equal(t, "Budi", st.Ketua.Name)
	assert.Equal(t, "Ani", st.WakilKetua.Name)
	_, hasKetuaUmum := st.Divisions["ketua_umum"]
	assert.False(t, hasKetuaUmum)
	assert.True(t, st.Divisions["leadership"].Ketua.IsEmpty())

	require.Len(t, unplaced, 1)
	assert.Equal(t, ReasonUnclassifiedLeadership, unplaced[0].Reason)
	assert.Equal(t, "leadership", unplaced[0].DivisionCode)
}

func TestResolveStructure_BendaharaOnlyInHumi(t *testing.T) {
	_, humi, anf := catalog()
	cab := &model.CabinetModel{Members: []model.MemberModel{
		member("Ani", "Ketua ANF", &anf),
		member("Budi", "Bendahara ANF", &anf),
		member("Cici", "Bendahara HUMI", &humi),
	}}

	st := ResolveStructure(cab, []divisionModel.DivisionModel{humi, anf})
	a := st.Divisions["anf"]
	assert.Nil(t, a.Bendahara)
	assert.Equal(t, "Ani", a.Ketua.Name)
	assert.Equal(t, "Budi", a.WakilKetua.Name)
	assert.Equal(t, "Bendahara ANF", a.WakilKetua.Position)
	assert.Equal(t, "Cici", st.Divisions["humi"].Bendahara.Name)
	assert.True(t, st.Divisions["humi"].Ketua.IsEmpty())
}

func TestResolveStructure_FirstFitKeepsPositionText(t *testing.T) {
	_, humi, _ := catalog()
	img := "https://cdn.example.org/dodi.jpg"
	m := member("Dodi", "Kabid HUMI", &humi)
	m.MemberImageURL = &img

	st := ResolveStructure(&model.CabinetModel{Members: []model.MemberModel{m}}, []divisionModel.DivisionModel{humi})
	k := st.Divisions["humi"].Ketua
	assert.Equal(t, "Dodi", k.Name)
	assert.Equal(t, "Kabid HUMI", k.Position)
	assert.Equal(t, img, k.Image)
	assert.Equal(t, "", k.Description)
}

func TestResolveStructure_DivisionFullAndUnknown(t *testing.T) {
	_, _, anf := catalog()
	ghost := division("ghost", "Hilang")
	cab := &model.CabinetModel{Members: []model.MemberModel{
		member("A", "Staff", &anf),
		member("B", "Staff", &anf),
		member("C", "Staff", &anf),
		member("D", "Staff", &anf),
		member("E", "Ketua", &ghost),
		member("F", "Ketua", nil),
	}}

	st, unplaced := ResolveStructureWithDiagnostics(cab, []divisionModel.DivisionModel{anf})
	a := st.Divisions["anf"]
	assert.Equal(t, []string{"A", "B", "C"}, []string{a.Ketua.Name, a.WakilKetua.Name, a.Sekretaris.Name})

	require.Len(t, unplaced, 3)
	assert.Equal(t, ReasonDivisionFull, unplaced[0].Reason)
	assert.Equal(t, ReasonUnknownDivision, unplaced[1].Reason)
	assert.Equal(t, "ghost", unplaced[1].DivisionCode)
	assert.Equal(t, ReasonUnknownDivision, unplaced[2].Reason)
	assert.Equal(t, "", unplaced[2].DivisionCode)
}

func TestResolveStructure_ExampleScenario(t *testing.T) {
	leadership := division("leadership", "Pimpinan")
	humi := division("humi", "HUMI")
	cab := &model.CabinetModel{Members: []model.MemberModel{
		member("Ani", "Ketua", &leadership),
		member("Budi", "Wakil Ketua", &leadership),
		member("Cici", "Sekretaris HUMI", &humi),
	}}

	st, unplaced := ResolveStructureWithDiagnostics(cab, []divisionModel.DivisionModel{leadership, humi})
	assert.Empty(t, unplaced)
	assert.NotNil(t, unplaced)

	top := decode(t, st)
	var ketua, wakil Slot
	require.NoError(t, json.Unmarshal(top["ketua"], &ketua))
	require.NoError(t, json.Unmarshal(top["wakilKetua"], &wakil))
	assert.Equal(t, "Ani", ketua.Name)
	assert.Equal(t, "Budi", wakil.Name)

	var h DivisionStructure
	require.NoError(t, json.Unmarshal(top["humi"], &h))
	assert.Equal(t, "Cici", h.Sekretaris.Name)
	assert.Equal(t, constants.EmptySlotText, h.Ketua.Name)
	require.NotNil(t, h.Bendahara)
	assert.Equal(t, constants.EmptySlotText, h.Bendahara.Name)
}

func TestClassifyPosition(t *testing.T) {
	cases := map[string]slotKind{
		"Ketua":            slotKetua,
		"KETUA ANF":        slotKetua,
		"Wakil Ketua":      slotWakilKetua,
		"wakil ketua umum": slotWakilKetua,
		"Sekretaris":       slotSekretaris,
		"Bendahara Umum":   slotBendahara,
		"Kabid HUMI":       slotUnknown,
		"":                 slotUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, classifyPosition(in), in)
	}
}

func topLevelKeys(t *testing.T, raw []byte) []string {
	t.Helper()
	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	require.NoError(t, err)
	require.Equal(t, json.Delim('{'), tok)
	var out []string
	for dec.More() {
		tok, err = dec.Token()
		require.NoError(t, err)
		out = append(out, tok.(string))
		var skip json.RawMessage
		require.NoError(t, dec.Decode(&skip))
	}
	return out
}

func TestStructureJSON_FollowsCatalogOrder(t *testing.T) {
	leadership, humi, anf := catalog()
	st := ResolveStructure(&model.CabinetModel{}, []divisionModel.DivisionModel{humi, anf, leadership})

	raw, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Equal(t, []string{"ketua", "wakilKetua", "humi", "anf", "leadership"}, topLevelKeys(t, raw))
}

func TestStructureJSON_TopLevelWinsOnCollision(t *testing.T) {
	clash := division("ketua", "Divisi Bernama Ketua")
	anf := division("anf", "ANF")
	cab := &model.CabinetModel{Members: []model.MemberModel{
		member("Rina", "Ketua Divisi", &clash),
	}}
	st := ResolveStructure(cab, []divisionModel.DivisionModel{clash, anf})

	raw, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Equal(t, []string{"ketua", "wakilKetua", "anf"}, topLevelKeys(t, raw))

	var ketua Slot
	require.NoError(t, json.Unmarshal(decode(t, st)["ketua"], &ketua))
	assert.Equal(t, constants.EmptySlotText, ketua.Name)
	assert.False(t, st.Divisions["ketua"].Ketua.IsEmpty())
}
