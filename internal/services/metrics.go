package services

import (
	"math"
	"sort"

	"github.com/AnilSajjanshetty/school-management-2025/internal/models"
)

// AttendancePercent считает процент посещаемости по агрегатным полям
// записи: round(100 * present / (present + absent)). Нулевой знаменатель
// дает 0, а не ошибку.
func AttendancePercent(present, absent int) int {
	total := present + absent
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(present) / float64(total) * 100))
}

// StatusAttendancePercent считает процент посещаемости по индивидуальным
// записям со статусом: round(100 * count(present) / count(all))
func StatusAttendancePercent(records []models.Attendance) int {
	if len(records) == 0 {
		return 0
	}
	presentCount := 0
	for _, rec := range records {
		if rec.Status == models.AttendancePresent {
			presentCount++
		}
	}
	return int(math.Round(float64(presentCount) / float64(len(records)) * 100))
}

// ExamAverage считает средний балл: round(100 * набрано / максимум).
// Нулевой максимум дает 0.
func ExamAverage(marksObtained, totalMarks int) int {
	if totalMarks == 0 {
		return 0
	}
	return int(math.Round(float64(marksObtained) / float64(totalMarks) * 100))
}

// SortSchedule сортирует уроки по фиксированному порядку дней недели,
// внутри дня — по номеру урока. Сортировка стабильная.
func SortSchedule(entries []models.TimetableEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, dj := models.DayIndex(entries[i].Day), models.DayIndex(entries[j].Day)
		if di != dj {
			return di < dj
		}
		return entries[i].Period < entries[j].Period
	})
}

// GroupByWeekday раскладывает уроки по дням учебной недели.
// В результате всегда ровно шесть ключей Monday..Saturday, воскресенье
// не попадает в выдачу независимо от входных данных.
func GroupByWeekday(entries []models.TimetableEntry) map[string][]models.TimetableEntry {
	grouped := make(map[string][]models.TimetableEntry, len(models.WeekDays))
	for _, day := range models.WeekDays {
		grouped[day] = []models.TimetableEntry{}
	}
	for _, entry := range entries {
		if models.DayIndex(entry.Day) < 0 {
			continue
		}
		grouped[entry.Day] = append(grouped[entry.Day], entry)
	}
	for day := range grouped {
		day := day
		sort.SliceStable(grouped[day], func(i, j int) bool {
			return grouped[day][i].Period < grouped[day][j].Period
		})
	}
	return grouped
}

// ClassDisplayName собирает отображаемое имя класса: "имя секция"
func ClassDisplayName(class models.Class) string {
	if class.Section == "" {
		return class.Name
	}
	return class.Name + " " + class.Section
}
