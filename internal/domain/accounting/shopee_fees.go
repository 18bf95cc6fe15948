package accounting

// Shopee fee mapping tables. Descriptions must match the labels of the
// Shopee seller-center exports verbatim, including casing and diacritics.

// ShopeeSettlementFees maps the Shopee settlement (payout) report.
var ShopeeSettlementFees = []FeeMappingRule{
	{Field: "phiCoDinh", Description: "Phí cố định", DefaultAccount: "64173", Row: 1},
	{Field: "phiDichVu", Description: "Phí Dịch Vụ", DefaultAccount: "64174", Row: 2},
	{Field: "phiThanhToan", Description: "Phí thanh toán", DefaultAccount: "64175", Row: 3},
	{Field: "phiHoaHongTiepThi", Description: "Phí hoa hồng Tiếp thị liên kết", DefaultAccount: "64176", Row: 4},
	{Field: "phiVanChuyen", Description: "Phí vận chuyển (do Người bán trả)", DefaultAccount: "64177", Row: 5},
	{Field: "troGiaVanChuyen", Description: "Trợ giá vận chuyển từ Shopee", DefaultAccount: "5118", Row: 6},
	{Field: "maGiamGiaShop", Description: "Mã giảm giá do Shop tạo", DefaultAccount: "5211", Row: 7},
	{Field: "shopeeXuHoanLai", Description: "Shopee Xu được hoàn lại", DefaultAccount: "5211", Row: 8, TargetColumn: "giam_tru"},
	{Field: "phiTraHang", Description: "Phí xử lý đơn hoàn", DefaultAccount: "64178", Row: 9},
	{Field: "dieuChinhKhac", Description: "Điều chỉnh khác", DefaultAccount: "811", Row: 10},
}

// ShopeeImportFees maps the Shopee import-reconciliation report, the row
// layout the accounting team keys settlement imports against.
var ShopeeImportFees = []FeeMappingRule{
	{Field: "phiCoDinh", Description: "Phí cố định", DefaultAccount: "64173", Row: 1},
	{Field: "phiDichVu", Description: "Phí dịch vụ", DefaultAccount: "64174", Row: 2},
	{Field: "phiThanhToan", Description: "Phí thanh toán", DefaultAccount: "64175", Row: 3},
	{Field: "phiHoaHongTiepThi", Description: "Hoa hồng tiếp thị liên kết", DefaultAccount: "64176", Row: 4},
	{Field: "phiVanChuyenThucTe", Description: "Phí vận chuyển thực tế", DefaultAccount: "64177", Row: 5},
	{Field: "troGiaVanChuyen", Description: "Trợ giá vận chuyển", DefaultAccount: "5118", Row: 6},
	{Field: "maGiamGiaShop", Description: "Voucher của Shop", DefaultAccount: "5211", Row: 7},
	{Field: "maGiamGiaShopee", Description: "Voucher do Shopee tài trợ", DefaultAccount: "5211", Row: 7, TargetColumn: "tai_tro"},
	{Field: "dieuChinhKhac", Description: "Các khoản điều chỉnh", DefaultAccount: "811", Row: 8},
}
