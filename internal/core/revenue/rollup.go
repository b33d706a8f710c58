package revenue

import (
	"github.com/hoteldesk/hotel_ops_backend/internal/core/domain"
)

// SectionDefinition names a report section, the charge categories it sums
// and the single adjustment category subtracted from it.
type SectionDefinition struct {
	Section    domain.Section
	Charges    []domain.Category
	Adjustment domain.Category
}

// sectionDefinitions is the fixed presentation grouping. Order matters: it
// is the order sections appear in every report.
var sectionDefinitions = []SectionDefinition{
	{
		Section:    domain.SectionRoom,
		Charges:    []domain.Category{domain.CategoryRoomCharge, domain.CategoryExtraBed},
		Adjustment: domain.CategoryRoomAdjustment,
	},
	{
		Section: domain.SectionFnb,
		Charges: []domain.Category{
			domain.CategoryRestaurant,
			domain.CategoryRoomService,
			domain.CategoryOutside,
			domain.CategoryBanquetFood,
			domain.CategoryConferenceFood,
		},
		Adjustment: domain.CategoryFnbAdjustment,
	},
	{
		Section: domain.SectionHallEquipment,
		Charges: []domain.Category{
			domain.CategoryBanquetHall,
			domain.CategoryConferenceHall,
			domain.CategoryEquipment,
		},
		Adjustment: domain.CategoryHallAdjustment,
	},
	{
		Section:    domain.SectionHousekeeping,
		Charges:    []domain.Category{domain.CategoryMinibar, domain.CategoryLaundry},
		Adjustment: domain.CategoryHkAdjustment,
	},
	{
		Section: domain.SectionOthers,
		Charges: []domain.Category{
			domain.CategoryTransport,
			domain.CategoryTelephone,
			domain.CategoryBusinessCenter,
			domain.CategoryDriverAccommodation,
			domain.CategoryHealthClub,
			domain.CategorySwimmingPool,
			domain.CategorySpa,
			domain.CategoryGiftShop,
			domain.CategoryTicketing,
			domain.CategoryMisc,
			domain.CategoryDamage,
		},
		Adjustment: domain.CategoryOthersAdjustment,
	},
}

// Sections returns the fixed section definitions in report order.
func Sections() []SectionDefinition {
	defs := make([]SectionDefinition, len(sectionDefinitions))
	copy(defs, sectionDefinitions)
	return defs
}

// RollUp folds a unified category set into section totals and the overall
// grand total for one window. Per section: net/service/tax are the sums over
// its charge categories minus the matching component of its adjustment
// category, and grand = net + service + tax. The report grand total sums the
// sections component-wise.
func RollUp(t Totals) ([]domain.SectionTotal, domain.GrandTotal) {
	sections := make([]domain.SectionTotal, 0, len(sectionDefinitions))
	var grand domain.GrandTotal

	for _, def := range sectionDefinitions {
		var sum domain.CategoryTotal
		for _, category := range def.Charges {
			sum = sum.Add(t.Categories[category])
		}
		adj := t.Categories[def.Adjustment]

		st := domain.SectionTotal{
			Section: def.Section,
			Net:     sum.Amount.Sub(adj.Amount),
			Service: sum.Service.Sub(adj.Service),
			Tax:     sum.Tax.Sub(adj.Tax),
		}
		st.Grand = st.Net.Add(st.Service).Add(st.Tax)
		sections = append(sections, st)

		grand.Net = grand.Net.Add(st.Net)
		grand.Service = grand.Service.Add(st.Service)
		grand.Tax = grand.Tax.Add(st.Tax)
	}

	grand.Grand = grand.Net.Add(grand.Service).Add(grand.Tax)
	return sections, grand
}
