package chatService

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/api/finance"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/internal/entity"
	contextPkg "github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/context"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/nlp"
	"github.com/Fahmimenjadihengker/YourMoment-sub001/pkg/simulation"
	"github.com/sirupsen/logrus"
)

const (
	unavailableRecommendation = "Maaf, aku belum bisa membaca transaksimu saat ini. Coba lagi sebentar lagi ya."
	unavailableReport         = "Maaf, aku belum bisa menyusun laporanmu saat ini. Coba lagi sebentar lagi ya."
)

// periodTotals loads each period at most once per chat message.
type periodTotals struct {
	svc    *chatService
	userID string
	cache  map[string]entity.TransactionTotals
}

func (p *periodTotals) get(ctx context.Context, period string) (entity.TransactionTotals, error) {
	if totals, ok := p.cache[period]; ok {
		return totals, nil
	}

	totals, err := p.svc.totals.GetTotals(ctx, p.userID, period)
	if err != nil {
		p.svc.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"user_id":    p.userID,
			"period":     period,
			"error":      err.Error(),
		}).Error("Failed to load transaction totals")
		return entity.TransactionTotals{}, err
	}

	if p.cache == nil {
		p.cache = make(map[string]entity.TransactionTotals)
	}
	p.cache[period] = totals
	return totals, nil
}

// goalSection picks the target as the sum of several named targets, else the
// classified target, else a single named target, else the wallet goal. The
// saving rate prefers a weekly amount, then a monthly one, then the wallet
// allowances. A monthly amount guessed by position is dropped when the
// message lists several purchases, since it is one of them.
func (s *chatService) goalSection(amounts nlp.ExtractionResult, targets []nlp.NamedTarget, wallet entity.Wallet) (string, *simulation.Outcome) {
	in := simulation.Input{CurrentBalance: wallet.Balance}

	switch {
	case len(targets) > 1:
		in.Target = nlp.CalculateTotalTarget(targets)
		in.GoalName = joinTargetNames(targets)
	case amounts.Target != nil:
		in.Target = *amounts.Target
		in.GoalName = joinTargetNames(targets)
	case len(targets) == 1:
		in.Target = targets[0].Amount
		in.GoalName = joinTargetNames(targets)
	default:
		in.Target = wallet.SavingsGoal
		in.GoalName = wallet.SavingsGoalName
	}

	monthly := amounts.Monthly
	if len(targets) > 1 && amounts.HasDiagnostic(nlp.DiagPositional) {
		monthly = nil
	}

	switch {
	case amounts.Weekly != nil:
		in.Recurring, in.Unit = *amounts.Weekly, simulation.PeriodWeek
	case monthly != nil:
		in.Recurring, in.Unit = *monthly, simulation.PeriodMonth
	case wallet.WeeklyAllowance > 0:
		in.Recurring, in.Unit = wallet.WeeklyAllowance, simulation.PeriodWeek
	default:
		in.Recurring, in.Unit = wallet.MonthlyAllowance, simulation.PeriodMonth
	}

	out, err := s.calculator.Simulate(in)

	text := out.Narrative
	if len(targets) > 1 {
		text = targetBreakdown(targets) + " " + text
	}
	if err != nil {
		return text, nil
	}
	return text, &out
}

func (s *chatService) recommendationSection(ctx context.Context, reports *periodTotals, wallet entity.Wallet) string {
	totals, err := reports.get(ctx, finance.PeriodMonth)
	if err != nil {
		return unavailableRecommendation
	}

	var tips []string
	switch {
	case totals.Income == 0 && totals.Expense == 0:
		tips = append(tips, "Belum ada transaksi yang tercatat bulan ini. Catat pemasukan dan pengeluaranmu supaya saranku lebih tepat.")
	case totals.Income == 0:
		tips = append(tips, fmt.Sprintf("Bulan ini tercatat pengeluaran %s tanpa pemasukan. Pastikan uang saku atau gajimu juga dicatat.",
			simulation.FormatRupiah(totals.Expense)))
	default:
		tips = append(tips, savingsTip(totals))
	}

	if category, amount, ok := topCategory(totals.ByCategory); ok && totals.Expense > 0 {
		tips = append(tips, fmt.Sprintf("Pengeluaran terbesarmu ada di kategori %s (%s, %d%% dari total pengeluaran).",
			category, simulation.FormatRupiah(amount), amount*100/totals.Expense))
	}

	if wallet.MonthlyAllowance > 0 && totals.Expense > wallet.MonthlyAllowance {
		tips = append(tips, fmt.Sprintf("Pengeluaranmu sudah melewati uang saku bulanan %s sebesar %s. Tahan dulu belanja yang tidak mendesak.",
			simulation.FormatRupiah(wallet.MonthlyAllowance), simulation.FormatRupiah(totals.Expense-wallet.MonthlyAllowance)))
	}

	if wallet.SavingsGoal > 0 && totals.Net() > 0 {
		out, err := s.calculator.Simulate(simulation.Input{
			Target:         wallet.SavingsGoal,
			Recurring:      totals.Net(),
			Unit:           simulation.PeriodMonth,
			CurrentBalance: wallet.Balance,
			GoalName:       wallet.SavingsGoalName,
		})
		if err == nil {
			tips = append(tips, out.Narrative)
		}
	}

	return "Saran keuangan untukmu:\n- " + strings.Join(tips, "\n- ")
}

func reportSection(ctx context.Context, reports *periodTotals, wallet entity.Wallet) string {
	month, err := reports.get(ctx, finance.PeriodMonth)
	if err != nil {
		return unavailableReport
	}
	week, err := reports.get(ctx, finance.PeriodWeek)
	if err != nil {
		return unavailableReport
	}

	return fmt.Sprintf("Laporan keuanganmu:\n"+
		"- Bulan ini: pemasukan %s, pengeluaran %s, selisih %s.\n"+
		"- Minggu ini: pemasukan %s, pengeluaran %s, selisih %s.\n"+
		"- Saldo saat ini: %s.",
		simulation.FormatRupiah(month.Income), simulation.FormatRupiah(month.Expense), simulation.FormatRupiah(month.Net()),
		simulation.FormatRupiah(week.Income), simulation.FormatRupiah(week.Expense), simulation.FormatRupiah(week.Net()),
		simulation.FormatRupiah(wallet.Balance))
}

func unknownSection() string {
	return "Maaf, aku belum paham maksudmu. Kamu bisa tanya hal seperti:\n" +
		"- \"mau beli laptop 15jt, uang jajan 2jt per bulan\" untuk simulasi target\n" +
		"- \"kasih saran keuangan dong\" untuk rekomendasi\n" +
		"- \"laporan keuangan bulan ini\" untuk ringkasan"
}

func savingsTip(totals entity.TransactionTotals) string {
	net := totals.Net()
	if net < 0 {
		return fmt.Sprintf("Pengeluaranmu bulan ini (%s) lebih besar dari pemasukan (%s). Kurangi pengeluaran yang tidak mendesak supaya tidak defisit.",
			simulation.FormatRupiah(totals.Expense), simulation.FormatRupiah(totals.Income))
	}

	pct := net * 100 / totals.Income
	switch {
	case pct < 10:
		return fmt.Sprintf("Kamu baru menyisihkan %d%% dari pemasukan bulan ini. Usahakan minimal 10 sampai 20%%.", pct)
	case pct < 20:
		return fmt.Sprintf("Kamu sudah menyisihkan %d%% dari pemasukan bulan ini. Sedikit lagi menuju 20%%.", pct)
	default:
		return fmt.Sprintf("Hebat! Kamu menyisihkan %d%% dari pemasukan bulan ini. Pertahankan ya.", pct)
	}
}

// topCategory breaks ties by category name so the tip is stable.
func topCategory(byCategory map[string]int64) (string, int64, bool) {
	var (
		best   string
		amount int64
		found  bool
	)
	for _, category := range slices.Sorted(maps.Keys(byCategory)) {
		if v := byCategory[category]; !found || v > amount {
			best, amount, found = category, v, true
		}
	}
	return best, amount, found && amount > 0
}

func isPlaceholderName(name string) bool {
	return name == "" || strings.HasPrefix(name, "target ")
}

func joinTargetNames(targets []nlp.NamedTarget) string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		if !isPlaceholderName(t.Name) {
			names = append(names, t.Name)
		}
	}

	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " dan " + names[len(names)-1]
	}
}

func targetBreakdown(targets []nlp.NamedTarget) string {
	parts := make([]string, len(targets))
	for i, t := range targets {
		parts[i] = t.Name + " " + simulation.FormatRupiah(t.Amount)
	}
	return fmt.Sprintf("Total targetmu %s (%s).",
		simulation.FormatRupiah(nlp.CalculateTotalTarget(targets)), strings.Join(parts, " + "))
}
