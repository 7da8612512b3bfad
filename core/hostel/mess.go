package hostel

import "strings"

// MessTimings is the canonical mess schedule text shared by several replies.
const MessTimings = `**Mess Timings:**
- Breakfast: 7:00 AM - 9:00 AM
- Lunch: 12:00 PM - 2:00 PM
- Dinner: 7:00 PM - 9:00 PM`

var menus = map[string]string{
	"breakfast": `**Today's Breakfast (7:00 AM - 9:00 AM):**
- Aloo Paratha with Curd
- Poha with Tea/Coffee
- Bread, Butter, Jam
- Seasonal Fruits`,

	"lunch": `**Today's Lunch (12:00 PM - 2:00 PM):**
- Rice with Dal Tadka
- Mixed Vegetable Curry
- Roti/Chapati
- Pickle and Salad`,

	"dinner": `**Today's Dinner (7:00 PM - 9:00 PM):**
- Rajma with Rice
- Aloo Gobi
- Roti/Chapati
- Sweet Dish`,

	"all": `**Full Day Menu:**
**Breakfast:** Paratha, Poha, Bread & Tea
**Lunch:** Rice, Dal, Sabzi, Roti
**Dinner:** Rice, Curry, Roti, Sweet`,
}

// MenuInfo returns the menu text for a meal type. Unrecognized meal types
// (including "snacks", which has no dedicated card) get the full-day menu.
func MenuInfo(mealType string) string {
	if menu, ok := menus[strings.ToLower(mealType)]; ok {
		return menu
	}
	return menus["all"]
}
