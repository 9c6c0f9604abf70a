package simulation

import (
	"fmt"
	"strings"
)

var unitNames = map[PeriodUnit]string{
	PeriodDay:   "hari",
	PeriodWeek:  "minggu",
	PeriodMonth: "bulan",
}

type band struct {
	maxMonths float64
	opening   string
}

// Checked in order; the last band has no upper bound.
var bands = []band{
	{maxMonths: 3, opening: "Kabar baik! Targetmu sudah dekat."},
	{maxMonths: 12, opening: "Targetmu realistis untuk dicapai tahun ini."},
	{maxMonths: 0, opening: "Targetmu butuh waktu cukup panjang, tapi tetap bisa dicapai."},
}

func narrativeFor(in Input, out Outcome) string {
	goal := "target"
	if in.GoalName != "" {
		goal = "target " + in.GoalName
	}

	switch out.Status {
	case StatusCompleted:
		return fmt.Sprintf("Selamat! Saldo kamu %s sudah cukup untuk %s seharga %s, jadi targetnya sudah tercapai.",
			FormatRupiah(in.CurrentBalance), goal, FormatRupiah(in.Target))

	case StatusUnreachable:
		return fmt.Sprintf("Dengan menabung %s per %s, %s seharga %s butuh %d %s, lebih dari 10 tahun. "+
			"Coba naikkan jumlah tabungan atau turunkan targetnya.",
			FormatRupiah(in.Recurring), unitNames[in.Unit], goal, FormatRupiah(in.Target),
			out.PeriodsNeeded, unitNames[in.Unit])
	}

	var b strings.Builder
	months := monthsEquivalent(out.PeriodsNeeded, in.Unit)
	for _, bd := range bands {
		if bd.maxMonths == 0 || months <= bd.maxMonths {
			b.WriteString(bd.opening)
			break
		}
	}

	switch {
	case in.CurrentBalance > 0:
		fmt.Fprintf(&b, " Saldo kamu sekarang %s, jadi masih kurang %s.",
			FormatRupiah(in.CurrentBalance), FormatRupiah(out.Remaining))
	case in.CurrentBalance < 0:
		fmt.Fprintf(&b, " Saldo kamu sedang minus %s, jadi yang perlu dikumpulkan %s.",
			FormatRupiah(-in.CurrentBalance), FormatRupiah(out.Remaining))
	}

	fmt.Fprintf(&b, " Dengan menabung %s per %s, %s seharga %s bisa tercapai dalam %s",
		FormatRupiah(in.Recurring), unitNames[in.Unit], goal, FormatRupiah(in.Target),
		humanDuration(out.PeriodsNeeded, in.Unit))
	if out.ProjectedCompletionDate != nil {
		fmt.Fprintf(&b, ", sekitar %s", FormatMonthYear(*out.ProjectedCompletionDate))
	}
	b.WriteString(".")

	return b.String()
}

func humanDuration(periods int64, unit PeriodUnit) string {
	base := fmt.Sprintf("%d %s", periods, unitNames[unit])
	if unit != PeriodMonth || periods < 12 {
		return base
	}

	years, months := periods/12, periods%12
	if months == 0 {
		return fmt.Sprintf("%s (%d tahun)", base, years)
	}
	return fmt.Sprintf("%s (%d tahun %d bulan)", base, years, months)
}

func narrativeInvalidRate(unit PeriodUnit) string {
	return fmt.Sprintf("Aku belum bisa menghitung simulasinya karena jumlah tabungan per %s belum valid. "+
		"Sebutkan berapa yang bisa kamu sisihkan, misalnya \"uang jajan 2jt per bulan\".", unitNames[unit])
}

func narrativeInvalidTarget() string {
	return "Aku belum tahu berapa target yang ingin kamu capai. " +
		"Sebutkan harga barangnya, misalnya \"mau beli laptop harga 15jt\"."
}
