package revenue

import "github.com/hoteldesk/hotel_ops_backend/internal/core/domain"

// The default tables below are the single authoritative port of the legacy
// code lists. The statement, dashboard and trend views all read from here;
// they previously each carried their own diverging copies.
//
// Tables are keyed per source collection because outlet codes legitimately
// repeat across the two outlet ledgers with different meanings: SLA02/SDA02
// are restaurant revenue in the primary outlet view but room-service revenue
// in the secondary one. Within a single table every code maps to exactly one
// category.

// guestLedgerCodes classifies the s1 guest ledger. Charge rows carry their
// value in the amount column, adjustment rows in the credit column.
var guestLedgerCodes = map[string]Entry{
	// Room
	"SR001": {domain.CategoryRoomCharge, domain.RoleCharge},
	"SN001": {domain.CategoryRoomCharge, domain.RoleCharge},
	"SM003": {domain.CategoryExtraBed, domain.RoleCharge},
	"DR001": {domain.CategoryRoomAdjustment, domain.RoleAdjustment},
	"DN001": {domain.CategoryRoomAdjustment, domain.RoleAdjustment},
	"DM003": {domain.CategoryRoomAdjustment, domain.RoleAdjustment},

	// F&B adjustments (outlet and banquet reversals post to the guest ledger)
	"DRS01": {domain.CategoryFnbAdjustment, domain.RoleAdjustment},
	"DRS02": {domain.CategoryFnbAdjustment, domain.RoleAdjustment},
	"DRS04": {domain.CategoryFnbAdjustment, domain.RoleAdjustment},
	"DTA01": {domain.CategoryFnbAdjustment, domain.RoleAdjustment},
	"DBQ01": {domain.CategoryFnbAdjustment, domain.RoleAdjustment},
	"DCN01": {domain.CategoryFnbAdjustment, domain.RoleAdjustment},
	"DJS05": {domain.CategoryFnbAdjustment, domain.RoleAdjustment},
	"DBR01": {domain.CategoryFnbAdjustment, domain.RoleAdjustment},

	// Hall & equipment adjustments.
	// TODO: confirm with the accounts owner whether DJS01 belongs here or in
	// the others adjustment bucket; the legacy views disagreed and counted it
	// in both. It is registered exactly once here so it can never double up.
	"DC001": {domain.CategoryHallAdjustment, domain.RoleAdjustment},
	"DJC01": {domain.CategoryHallAdjustment, domain.RoleAdjustment},
	"DJS01": {domain.CategoryHallAdjustment, domain.RoleAdjustment},

	// Housekeeping
	"SL002": {domain.CategoryLaundry, domain.RoleCharge},
	"SM001": {domain.CategoryMinibar, domain.RoleCharge},
	"DL002": {domain.CategoryHkAdjustment, domain.RoleAdjustment},
	"DM001": {domain.CategoryHkAdjustment, domain.RoleAdjustment},

	// Others: charges
	"SR002": {domain.CategoryTransport, domain.RoleCharge},
	"DR02":  {domain.CategoryTransport, domain.RoleCharge}, // legacy code, charge despite the D prefix
	"SP001": {domain.CategoryTelephone, domain.RoleCharge},
	"SP002": {domain.CategoryTelephone, domain.RoleCharge},
	"SP003": {domain.CategoryTelephone, domain.RoleCharge},
	"BC001": {domain.CategoryBusinessCenter, domain.RoleCharge},
	"JSS06": {domain.CategoryDriverAccommodation, domain.RoleCharge},
	"JSS13": {domain.CategoryHealthClub, domain.RoleCharge},
	"JDS13": {domain.CategoryHealthClub, domain.RoleCharge},
	"SSW01": {domain.CategorySwimmingPool, domain.RoleCharge},
	"JSS03": {domain.CategoryGiftShop, domain.RoleCharge},
	"JDS03": {domain.CategoryGiftShop, domain.RoleCharge},
	"STK01": {domain.CategoryTicketing, domain.RoleCharge},
	"DTK01": {domain.CategoryTicketing, domain.RoleCharge},
	"SM002": {domain.CategoryMisc, domain.RoleCharge},
	"JSS08": {domain.CategoryDamage, domain.RoleCharge},

	// Others: adjustments
	"DBC01": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
	"DJS06": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
	"DJS04": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
	"DJS03": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
	"DJS13": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
	"DM002": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
	"DP001": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
	"DSW01": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
	"DR002": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
	"DJS08": {domain.CategoryOthersAdjustment, domain.RoleAdjustment},
}

// outletSalesCodes classifies the primary outlet sales view.
var outletSalesCodes = map[string]Entry{
	"SBA01": {domain.CategoryRestaurant, domain.RoleCharge},
	"SDA01": {domain.CategoryRestaurant, domain.RoleCharge},
	"SLA01": {domain.CategoryRestaurant, domain.RoleCharge},
	"SSA01": {domain.CategoryRestaurant, domain.RoleCharge},
	"SLA02": {domain.CategoryRestaurant, domain.RoleCharge},
	"SDA02": {domain.CategoryRestaurant, domain.RoleCharge},

	"SBA04": {domain.CategoryOutside, domain.RoleCharge},
	"SLA04": {domain.CategoryOutside, domain.RoleCharge},
	"SDA04": {domain.CategoryOutside, domain.RoleCharge},
	"SSA04": {domain.CategoryOutside, domain.RoleCharge},
}

// outletSalesBCodes classifies the secondary outlet sales view. SLA02/SDA02
// deliberately reappear here under room service; the two views are distinct
// ledgers and their totals merge additively.
var outletSalesBCodes = map[string]Entry{
	"SBA02": {domain.CategoryRoomService, domain.RoleCharge},
	"SLA02": {domain.CategoryRoomService, domain.RoleCharge},
	"SDA02": {domain.CategoryRoomService, domain.RoleCharge},
	"SSA02": {domain.CategoryRoomService, domain.RoleCharge},
}

// banquetCodes classifies the function billing ledger. The adapter folds
// each row's booking type and item type into a pseudo-code ("BAN/FOOD",
// "CONFERENCE HALL", ...) so function revenue is table-driven like every
// other source. "EQUIPEMENT" is the literal spelling in the record store.
var banquetCodes = buildBanquetCodes()

func buildBanquetCodes() map[string]Entry {
	m := map[string]Entry{
		"BANQUET HALL":    {domain.CategoryBanquetHall, domain.RoleCharge},
		"CONFERENCE HALL": {domain.CategoryConferenceHall, domain.RoleCharge},
		"EQUIPEMENT":      {domain.CategoryEquipment, domain.RoleCharge},
	}
	for _, banCon := range []string{"BAN", "VIP", "CNV"} {
		for _, item := range []string{"FOOD", "BEVERAGE"} {
			m[banCon+"/"+item] = Entry{domain.CategoryBanquetFood, domain.RoleCharge}
		}
	}
	for _, banCon := range []string{"CON", "BIG", "HLP", "MTL", "SML"} {
		for _, item := range []string{"FOOD", "BEVERAGE"} {
			m[banCon+"/"+item] = Entry{domain.CategoryConferenceFood, domain.RoleCharge}
		}
	}
	return m
}

// spaCodes classifies the spa sales view, which is pre-aggregated to a
// single pseudo-code by its adapter.
var spaCodes = map[string]Entry{
	"SPA": {domain.CategorySpa, domain.RoleCharge},
}

// DefaultTables returns the classification table for every source
// collection. Each call builds fresh immutable tables.
func DefaultTables() map[domain.SourceCollection]*Classification {
	return map[domain.SourceCollection]*Classification{
		domain.SourceGuestLedger:  NewClassification(domain.SourceGuestLedger, guestLedgerCodes),
		domain.SourceOutletSales:  NewClassification(domain.SourceOutletSales, outletSalesCodes),
		domain.SourceOutletSalesB: NewClassification(domain.SourceOutletSalesB, outletSalesBCodes),
		domain.SourceBanquet:      NewClassification(domain.SourceBanquet, banquetCodes),
		domain.SourceSpa:          NewClassification(domain.SourceSpa, spaCodes),
	}
}
