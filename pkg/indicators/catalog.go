package indicators

import (
	"cmp"
	"slices"
	"strings"

	"github.com/AmeliaKurnia/Dashboard-Ketahanan-Pangan/pkg/errors"
)

var catalog = []Indicator{
	{
		Code: X1, Name: "Indeks Ketahanan Pangan (IKP)", Unit: "Skor (0-100)",
		Definition: "Indikator komposit yang digunakan untuk mengukur kondisi ketahanan pangan suatu wilayah berdasarkan dimensi ketersediaan, akses, dan pemanfaatan pangan (BPN, 2023).",
		Polarity:   Positive, Dimension: General,
	},
	{
		Code: X2, Name: "Produksi Padi", Unit: "Ton",
		Definition: "Jumlah total padi yang dipanen, diukur dalam ton gabah kering panen. Dihitung dari luas panen dikali hasil per hektar (BPS, 2024).",
		Polarity:   Positive, Dimension: Availability,
	},
	{
		Code: X3, Name: "Produksi Jagung", Unit: "Ton",
		Definition: "Jumlah total jagung yang dipanen dalam satu musim tanam. Mencerminkan output fisik kinerja pertanian jagung (BPS, 2024).",
		Polarity:   Positive, Dimension: Availability,
	},
	{
		Code: X4, Name: "Pendapatan per Kapita", Unit: "Rupiah",
		Definition: "Pendapatan rata-rata setiap individu dalam suatu wilayah. Mencerminkan kemampuan ekonomi/daya beli masyarakat terhadap pangan (Eliezer, 2024).",
		Polarity:   Positive, Dimension: Accessibility,
	},
	{
		Code: X5, Name: "Persentase Pengeluaran per Kapita Sebulan Makanan", Unit: "Persen (%)",
		Definition: "Persentase rata-rata pengeluaran individu per bulan untuk makanan. Semakin tinggi persentasenya, semakin besar beban ekonomi rumah tangga (BPN, 2023).",
		Polarity:   Negative, Dimension: Accessibility,
	},
	{
		Code: X6, Name: "Realisasi Penerima Bansos Pangan", Unit: "Keluarga (KPM)",
		Definition: "Jumlah bantuan sosial yang telah disalurkan dan diterima oleh masyarakat untuk menjaga akses pangan saat terjadi guncangan ekonomi (Dalias & Wisana, 2023).",
		Polarity:   Positive, Dimension: Accessibility,
	},
	{
		Code: X7, Name: "Harga Komoditas Beras", Unit: "Rupiah/Kg",
		Definition: "Harga rata-rata beras kualitas medium di tingkat konsumen. Kestabilan harga beras krusial untuk kepastian akses pangan (Widarso & Djamaluddin, 2024).",
		Polarity:   Negative, Dimension: Accessibility,
	},
	{
		Code: X8, Name: "Harga Komoditas Jagung", Unit: "Rupiah/Kg",
		Definition: "Nilai jual jagung di pasar pada periode tertentu. Dipengaruhi oleh kualitas, lokasi, dan kondisi pasar (BPS, 2024).",
		Polarity:   Negative, Dimension: Accessibility,
	},
	{
		Code: X9, Name: "Akses Air Minum Layak", Unit: "Persen (%)",
		Definition: "Persentase penduduk yang menggunakan sumber air minum yang memenuhi syarat teknis dan kesehatan (FAO).",
		Polarity:   Positive, Dimension: Utilization,
	},
	{
		Code: X10, Name: "Akses Sanitasi Layak", Unit: "Persen (%)",
		Definition: "Persentase penduduk yang memiliki akses terhadap fasilitas sanitasi yang aman, layak, dan tidak mencemari lingkungan (FAO, 2024).",
		Polarity:   Positive, Dimension: Utilization,
	},
	{
		Code: X11, Name: "Prevalensi Balita Wasting", Unit: "Persen (%)",
		Definition: "Proporsi balita dengan berat badan terlalu rendah dibandingkan tinggi badan (kurus). Menandakan masalah gizi akut jangka pendek (FAO, 2024).",
		Polarity:   Negative, Dimension: Utilization,
	},
	{
		Code: X12, Name: "Prevalensi Balita Underweight", Unit: "Persen (%)",
		Definition: "Persentase balita dengan berat badan kurang dari standar usianya (BB/U). Mencerminkan akumulasi masalah gizi kronis dan akut (WHO).",
		Polarity:   Negative, Dimension: Utilization,
	},
	{
		Code: X13, Name: "Kepadatan Penduduk", Unit: "Jiwa/km²",
		Definition: "Jumlah penduduk per satuan luas wilayah. Tekanan demografis dapat mengganggu stabilitas ketersediaan pangan (FAO).",
		Polarity:   Negative, Dimension: Stability,
	},
	{
		Code: X14, Name: "Indeks Risiko Bencana", Unit: "Skor Indeks",
		Definition: "Potensi terjadinya kehilangan nyawa atau kerusakan aset akibat bencana. Dinilai berdasarkan bahaya, kerentanan, dan kapasitas (UNDRR, 2017).",
		Polarity:   Negative, Dimension: Stability,
	},
}

var byCode = func() map[Code]int {
	m := make(map[Code]int, len(catalog))
	for i, ind := range catalog {
		m[ind.Code] = i
	}
	return m
}()

// All returns the catalog in code order.
func All() []Indicator {
	out := make([]Indicator, len(catalog))
	copy(out, catalog)
	return out
}

// Codes returns every indicator code in catalog order.
func Codes() []Code {
	out := make([]Code, len(catalog))
	for i, ind := range catalog {
		out[i] = ind.Code
	}
	return out
}

// Len returns the number of indicators in the catalog.
func Len() int { return len(catalog) }

// ByCode returns the indicator with the given code.
func ByCode(code Code) (Indicator, bool) {
	i, ok := byCode[Code(strings.ToUpper(strings.TrimSpace(string(code))))]
	if !ok {
		return Indicator{}, false
	}
	return catalog[i], true
}

// MustByCode is like ByCode but panics for a code outside the catalog.
func MustByCode(code Code) Indicator {
	ind, ok := ByCode(code)
	if !ok {
		panic("indicators: unknown code " + string(code))
	}
	return ind
}

// ByName resolves a column header to an indicator. Both the short code and
// the descriptive name are accepted, case-insensitively.
func ByName(name string) (Indicator, bool) {
	want := strings.TrimSpace(name)
	if ind, ok := ByCode(Code(strings.ToUpper(want))); ok {
		return ind, true
	}
	for _, ind := range catalog {
		if strings.EqualFold(want, ind.Name) {
			return ind, true
		}
	}
	return Indicator{}, false
}

// Lookup is ByName returning a NotFoundError for unknown names.
func Lookup(name string) (Indicator, error) {
	ind, ok := ByName(name)
	if !ok {
		return Indicator{}, errors.NewNotFoundError("indicator", name)
	}
	return ind, nil
}

// InDimension returns the indicators of d in catalog order.
func InDimension(d Dimension) []Indicator {
	var out []Indicator
	for _, ind := range catalog {
		if ind.Dimension == d {
			out = append(out, ind)
		}
	}
	return out
}

// Sort orders codes by catalog position; codes outside the catalog go last
// in their original relative order.
func Sort(codes []Code) {
	pos := func(c Code) int {
		if i, ok := byCode[c]; ok {
			return i
		}
		return len(catalog)
	}
	slices.SortStableFunc(codes, func(a, b Code) int {
		return cmp.Compare(pos(a), pos(b))
	})
}
