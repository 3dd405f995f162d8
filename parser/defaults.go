package parser

// Indonesian returns the Rupiah vocabulary: "jt"/"juta" for millions,
// "rb"/"ribu"/"k" for thousands and the "Rp" symbol.
func Indonesian() Locale {
	return Locale{
		MillionSuffixes:  []string{"jt", "juta"},
		ThousandSuffixes: []string{"rb", "ribu", "k"},
		CurrencySymbols:  []string{"rp"},
	}
}

// DefaultCategories is the built-in Indonesian taxonomy.
func DefaultCategories() []Category {
	return []Category{
		{ID: "food", Name: "Makanan & Minuman", Direction: Expense, Icon: "utensils"},
		{ID: "transport", Name: "Transportasi", Direction: Expense, Icon: "car"},
		{ID: "shopping", Name: "Belanja", Direction: Expense, Icon: "shopping-bag"},
		{ID: "housing", Name: "Rumah & Sewa", Direction: Expense, Icon: "home"},
		{ID: "utilities", Name: "Utilitas & Tagihan", Direction: Expense, Icon: "wifi"},
		{ID: "health", Name: "Kesehatan", Direction: Expense, Icon: "heart"},
		{ID: "education", Name: "Pendidikan", Direction: Expense, Icon: "graduation-cap"},
		{ID: "travel", Name: "Liburan", Direction: Expense, Icon: "plane"},
		{ID: "gifts", Name: "Hadiah & Donasi", Direction: Expense, Icon: "gift"},
		{ID: "entertainment", Name: "Hiburan", Direction: Expense, Icon: "sparkles"},
		{ID: "other_expense", Name: "Lainnya", Direction: Expense, Icon: "wallet"},

		{ID: "salary", Name: "Gaji", Direction: Income, Icon: "briefcase"},
		{ID: "investment", Name: "Investasi", Direction: Income, Icon: "trending-up"},
		{ID: "freelance", Name: "Freelance", Direction: Income, Icon: "wallet"},
		{ID: "business", Name: "Bisnis", Direction: Income, Icon: "building"},
		{ID: "other_income", Name: "Lainnya (Pemasukan)", Direction: Income, Icon: "users"},
	}
}

// DefaultTables returns the built-in tables. Every call returns fresh slices.
//
// Only nine categories carry keywords. Bills, rent, travel, gifts and
// freelance income have no keyword rule, so "bayar listrik 200rb" lands in
// Lainnya and has to be recategorised by the user.
func DefaultTables() Tables {
	return Tables{
		Locale:     Indonesian(),
		Categories: DefaultCategories(),
		IncomeKeywords: []string{
			"gaji", "salary", "bonus", "terima", "dapat", "income", "pemasukan",
			"transfer masuk", "cashback", "refund", "jual", "bayaran", "fee", "honor",
		},
		ExpenseKeywords: []string{
			"beli", "bayar", "habis", "keluar", "spend", "pengeluaran", "buat",
			"untuk", "ongkos", "biaya", "harga", "tagihan", "cicilan", "kredit",
		},
		CategoryKeywords: []CategoryKeywords{
			{Name: "Makanan & Minuman", Keywords: []string{
				"kopi", "makan", "lunch", "dinner", "breakfast", "snack", "minum", "resto", "cafe",
				"warung", "nasi", "ayam", "bakso", "mie", "pizza", "burger", "boba", "es", "jus",
				"grab food", "gofood", "shopeefood",
			}},
			{Name: "Transportasi", Keywords: []string{
				"grab", "gojek", "taxi", "ojek", "bus", "kereta", "bensin", "parkir", "tol",
				"transport", "uber", "maxim", "indriver",
			}},
			{Name: "Belanja", Keywords: []string{
				"beli", "belanja", "shop", "mall", "toko", "baju", "sepatu", "tas", "online",
				"tokped", "shopee", "lazada", "blibli",
			}},
			{Name: "Hiburan", Keywords: []string{
				"nonton", "film", "bioskop", "game", "netflix", "spotify", "youtube", "concert",
				"wisata", "vacation", "liburan", "hotel",
			}},
			{Name: "Kesehatan", Keywords: []string{
				"obat", "dokter", "rumah sakit", "apotek", "klinik", "vitamin", "medical", "health",
				"gym", "fitness",
			}},
			{Name: "Pendidikan", Keywords: []string{
				"buku", "kursus", "les", "sekolah", "kuliah", "udemy", "course", "training", "seminar",
			}},
			{Name: "Gaji", Keywords: []string{"gaji", "salary", "upah", "bayaran", "honor"}},
			{Name: "Bisnis", Keywords: []string{
				"profit", "keuntungan", "omset", "penjualan", "client", "project", "invoice", "fee",
			}},
			{Name: "Investasi", Keywords: []string{"dividen", "return", "bunga", "deposito", "reksadana", "saham"}},
		},
		QuestionIndicators: []string{
			"berapa", "apa", "bagaimana", "kapan", "kenapa", "mengapa", "siapa",
			"gimana", "dimana", "tips", "saran", "kategori", "pengeluaran", "pemasukan",
			"minggu", "bulan", "hari", "total", "tren", "analisis", "ringkasan", "summary",
			"?",
		},
		Fallback: Fallback{
			Expense: "Lainnya",
			Income:  "Lainnya (Pemasukan)",
		},
	}
}
