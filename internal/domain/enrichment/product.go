package enrichment

import "fmt"

// OrderProduct is the canonical product record attached to sale items.
// Constructed once per distinct item code per enrichment batch, owned by the
// product cache, immutable after construction and shared by reference across
// every sale referencing the same item code.
//
// The three identifier fields resolve from the same two-source fallback chain
// by design: downstream accounting consumers address them independently, so
// they are kept as three named fields even though their values coincide.
type OrderProduct struct {
	// MaterialCode is the material identifier
	MaterialCode *string `json:"material_code"`
	// MaERP is the ERP identifier
	MaERP *string `json:"ma_erp"`
	// MaVatTu is the VatTu (goods/material) identifier
	MaVatTu *string `json:"ma_vat_tu"`

	// Name is the display name
	Name *string `json:"name"`
	// Unit is the unit of measure
	Unit *string `json:"unit"`
	// ProductType classifies the product (e.g. DIVU, GIFT)
	ProductType *string `json:"product_type"`
	// BrandCode and BrandName identify the product's brand
	BrandCode *string `json:"brand_code"`
	BrandName *string `json:"brand_name"`

	// Tracking flags. True only when the source payload carried the boolean
	// true; truthy strings and numbers map to false.
	TrackSerial    bool `json:"track_serial"`
	TrackBatch     bool `json:"track_batch"`
	TrackInventory bool `json:"track_inventory"`

	// Ledger account identifiers. Each resolves from exactly one source key;
	// absence yields nil, never a default account code.
	TkVatTu           *string `json:"tk_vat_tu"`            // material
	TkGiaVon          *string `json:"tk_gia_von"`           // cost of goods
	TkDoanhThuBanBuon *string `json:"tk_doanh_thu_ban_buon"` // wholesale revenue
	TkDoanhThuBanLe   *string `json:"tk_doanh_thu_ban_le"`   // retail revenue
	TkChiPhiKhuyenMai *string `json:"tk_chi_phi_khuyen_mai"` // promotion cost
	TkDoanhThuNoiBo   *string `json:"tk_doanh_thu_noi_bo"`   // internal revenue
	TkHangBanTraLai   *string `json:"tk_hang_ban_tra_lai"`   // sales returns
	TkDaiLy           *string `json:"tk_dai_ly"`             // agent
	TkSanPhamDoDang   *string `json:"tk_san_pham_do_dang"`   // work in progress
	TkChenhLechGiaVon *string `json:"tk_chenh_lech_gia_von"` // cost variance
	TkChietKhau       *string `json:"tk_chiet_khau"`         // discount
	TkKhauHao         *string `json:"tk_khau_hao"`           // depreciation
	TkHaoMon          *string `json:"tk_hao_mon"`            // accumulated depreciation
	TkPhaiThuDoanhThu *string `json:"tk_phai_thu_doanh_thu"` // receivable revenue
	TkPhaiTraGiaVon   *string `json:"tk_phai_tra_gia_von"`   // payable cost
	TkPhaiTraVatTu    *string `json:"tk_phai_tra_vat_tu"`    // payable material
}

// NormalizeProduct maps an external catalog payload onto the canonical
// OrderProduct. Catalog responses vary by API schema version, so synonym keys
// are resolved in a fixed priority order through FirstValue. A nil payload
// yields a nil product.
func NormalizeProduct(payload map[string]any) *OrderProduct {
	if payload == nil {
		return nil
	}

	// Identifier fields share the materialCode→code chain; see type doc.
	code := stringAt(payload, "materialCode", "code")

	return &OrderProduct{
		MaterialCode: code,
		MaERP:        stringAt(payload, "materialCode", "code"),
		MaVatTu:      stringAt(payload, "materialCode", "code"),
		Name:         stringAt(payload, "name", "invoiceName", "otherName"),
		// unit is preferred over the legacy dvt key
		Unit:        stringAt(payload, "unit", "dvt"),
		ProductType: stringAt(payload, "productType"),
		BrandCode:   stringAt(payload, "brandCode"),
		BrandName:   stringAt(payload, "brandName"),

		TrackSerial:    boolAt(payload, "isSerial"),
		TrackBatch:     boolAt(payload, "isLot"),
		TrackInventory: boolAt(payload, "isInventory"),

		TkVatTu:           stringAt(payload, "tkVatTu"),
		TkGiaVon:          stringAt(payload, "tkGiaVon"),
		TkDoanhThuBanBuon: stringAt(payload, "tkDoanhThuBanBuon"),
		TkDoanhThuBanLe:   stringAt(payload, "tkDoanhThuBanLe"),
		TkChiPhiKhuyenMai: stringAt(payload, "tkChiPhiKhuyenMai"),
		TkDoanhThuNoiBo:   stringAt(payload, "tkDoanhThuNoiBo"),
		TkHangBanTraLai:   stringAt(payload, "tkHangBanTraLai"),
		TkDaiLy:           stringAt(payload, "tkDaiLy"),
		TkSanPhamDoDang:   stringAt(payload, "tkSanPhamDoDang"),
		TkChenhLechGiaVon: stringAt(payload, "tkChenhLechGiaVon"),
		TkChietKhau:       stringAt(payload, "tkChietKhau"),
		TkKhauHao:         stringAt(payload, "tkKhauHao"),
		TkHaoMon:          stringAt(payload, "tkHaoMon"),
		TkPhaiThuDoanhThu: stringAt(payload, "tkPhaiThuDoanhThu"),
		TkPhaiTraGiaVon:   stringAt(payload, "tkPhaiTraGiaVon"),
		TkPhaiTraVatTu:    stringAt(payload, "tkPhaiTraVatTu"),
	}
}

// stringAt resolves the first usable value among the given payload keys and
// renders it as a string pointer, nil when every key is absent or empty.
func stringAt(payload map[string]any, keys ...string) *string {
	candidates := make([]any, len(keys))
	for i, k := range keys {
		candidates[i] = payload[k]
	}
	v := FirstValue(candidates...)
	if v == nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		s = fmt.Sprint(v)
	}
	return &s
}

// boolAt reports whether the payload carries exactly the boolean true under
// the given key. Any other value, including truthy strings, is false.
func boolAt(payload map[string]any, key string) bool {
	b, ok := payload[key].(bool)
	return ok && b
}
