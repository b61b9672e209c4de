package dateexpr

import (
	"time"

	"github.com/whichperiod/whichperiod/pkg/perioderr"
)

// Holiday names a date derived from a fixed calendrical formula
// rather than stored literally.
type Holiday string

// Built-in holidays. Floating holidays reduce to an ordinal weekday
// of a month; Easter and the days anchored to it use the computus.
const (
	Easter       Holiday = "Easter"
	GoodFriday   Holiday = "GoodFriday"
	EasterMonday Holiday = "EasterMonday"

	MLKDay          Holiday = "MLKDay"
	PresidentsDay   Holiday = "PresidentsDay"
	MemorialDay     Holiday = "MemorialDay"
	LaborDay        Holiday = "LaborDay"
	ColumbusDay     Holiday = "ColumbusDay"
	Thanksgiving    Holiday = "Thanksgiving"
	NewYearsDay     Holiday = "NewYearsDay"
	Juneteenth      Holiday = "Juneteenth"
	IndependenceDay Holiday = "IndependenceDay"
	VeteransDay     Holiday = "VeteransDay"
	Christmas       Holiday = "Christmas"
)

// holidayDef describes how a holiday's date is derived: either an
// offset in days from Easter Sunday, or an ordinary expression
// (ordinal weekday or fixed month/day) resolved like any other.
type holidayDef struct {
	fromEaster   bool
	easterOffset int
	expr         Expression
}

func nthWeekday(ordinal Ordinal, weekday time.Weekday, month time.Month) holidayDef {
	return holidayDef{expr: Expression{
		Kind: KindNthWeekday, Ordinal: ordinal, Weekday: weekday, Month: month,
	}}
}

func monthDay(month time.Month, day int) holidayDef {
	return holidayDef{expr: Expression{Kind: KindMonthDay, Month: month, Day: day}}
}

func easterOffset(days int) holidayDef {
	return holidayDef{fromEaster: true, easterOffset: days}
}

var holidayTable = map[Holiday]holidayDef{
	Easter:       easterOffset(0),
	GoodFriday:   easterOffset(-2),
	EasterMonday: easterOffset(1),

	MLKDay:        nthWeekday(3, time.Monday, time.January),
	PresidentsDay: nthWeekday(3, time.Monday, time.February),
	MemorialDay:   nthWeekday(OrdinalLast, time.Monday, time.May),
	LaborDay:      nthWeekday(1, time.Monday, time.September),
	ColumbusDay:   nthWeekday(2, time.Monday, time.October),
	Thanksgiving:  nthWeekday(4, time.Thursday, time.November),

	NewYearsDay:     monthDay(time.January, 1),
	Juneteenth:      monthDay(time.June, 19),
	IndependenceDay: monthDay(time.July, 4),
	VeteransDay:     monthDay(time.November, 11),
	Christmas:       monthDay(time.December, 25),
}

// holidayAliases maps normalized spellings to holidays. Keys are
// lowercase with everything but letters stripped, so "Labor Day",
// "LaborDay" and "labor day" all hit the same entry.
var holidayAliases = map[string]Holiday{
	"easter":       Easter,
	"eastersunday": Easter,
	"goodfriday":   GoodFriday,
	"eastermonday": EasterMonday,

	"mlkday":                MLKDay,
	"martinlutherkingday":   MLKDay,
	"martinlutherkingjrday": MLKDay,
	"presidentsday":         PresidentsDay,
	"washingtonsbirthday":   PresidentsDay,
	"memorialday":           MemorialDay,
	"laborday":              LaborDay,
	"columbusday":           ColumbusDay,
	"indigenouspeoplesday":  ColumbusDay,
	"thanksgiving":          Thanksgiving,
	"thanksgivingday":       Thanksgiving,
	"newyearsday":           NewYearsDay,
	"newyears":              NewYearsDay,
	"juneteenth":            Juneteenth,
	"independenceday":       IndependenceDay,
	"fourthofjuly":          IndependenceDay,
	"veteransday":           VeteransDay,
	"christmas":             Christmas,
	"christmasday":          Christmas,
}

// lookupHoliday resolves a raw name against the alias table.
func lookupHoliday(raw string) (Holiday, bool) {
	h, ok := holidayAliases[normalizeName(raw)]
	return h, ok
}

func (h Holiday) date(year int) (time.Time, error) {
	def, ok := holidayTable[h]
	if !ok {
		return time.Time{}, perioderr.Newf(perioderr.ErrExprUnresolvable,
			"unknown holiday %q", string(h))
	}
	if def.fromEaster {
		return easterSunday(year).AddDate(0, 0, def.easterOffset), nil
	}
	return def.expr.Resolve(year)
}
