package accounting

// TikTok Shop fee mapping tables. The seller-center exports mix English and
// Vietnamese labels; descriptions are matched verbatim.

// TikTokImportFees maps the TikTok Shop import-reconciliation report.
var TikTokImportFees = []FeeMappingRule{
	{Field: "phiHoaHong", Description: "TikTok Shop commission fee", DefaultAccount: "64183", Row: 1},
	{Field: "phiGiaoDich", Description: "Transaction fee", DefaultAccount: "64184", Row: 2},
	{Field: "phiHoaHongDong", Description: "Dynamic Commission", DefaultAccount: "64185", Row: 3},
	{Field: "phiHoaHongTiepThi", Description: "Affiliate commission", DefaultAccount: "64186", Row: 4},
	{Field: "phiVanChuyen", Description: "Shipping cost paid by seller", DefaultAccount: "64187", Row: 5},
	{Field: "troGiaVanChuyen", Description: "Shipping fee subsidy", DefaultAccount: "5118", Row: 6},
	{Field: "voucherXtra", Description: "Voucher Xtra service fee", DefaultAccount: "64188", Row: 7},
	{Field: "phiSFP", Description: "SFP service fee", DefaultAccount: "64189", Row: 8},
	{Field: "maGiamGiaShop", Description: "Seller discount", DefaultAccount: "5211", Row: 9},
	{Field: "maGiamGiaTikTok", Description: "Platform discount", DefaultAccount: "5211", Row: 9, TargetColumn: "tai_tro"},
	{Field: "dieuChinhKhac", Description: "Adjustment amount", DefaultAccount: "811", Row: 10},
}

// TikTokSettlementFees maps the TikTok Shop settlement (payout) report.
var TikTokSettlementFees = []FeeMappingRule{
	{Field: "phiHoaHong", Description: "Phí hoa hồng TikTok Shop", DefaultAccount: "64183", Row: 1},
	{Field: "phiGiaoDich", Description: "Phí giao dịch", DefaultAccount: "64184", Row: 2},
	{Field: "phiHoaHongDong", Description: "Phí hoa hồng linh hoạt", DefaultAccount: "64185", Row: 3},
	{Field: "phiHoaHongTiepThi", Description: "Phí hoa hồng tiếp thị liên kết", DefaultAccount: "64186", Row: 4},
	{Field: "phiVanChuyen", Description: "Phí vận chuyển do người bán trả", DefaultAccount: "64187", Row: 5},
	{Field: "troGiaVanChuyen", Description: "Trợ giá vận chuyển từ TikTok", DefaultAccount: "5118", Row: 6},
	{Field: "voucherXtra", Description: "Phí dịch vụ Voucher Xtra", DefaultAccount: "64188", Row: 7},
	{Field: "phiSFP", Description: "Phí dịch vụ SFP", DefaultAccount: "64189", Row: 8},
	{Field: "maGiamGiaShop", Description: "Giảm giá từ người bán", DefaultAccount: "5211", Row: 9},
	{Field: "dieuChinhKhac", Description: "Khoản điều chỉnh", DefaultAccount: "811", Row: 10},
}
