package notification_cache

import (
	"slices"

	"tracking-service/internal/entities"
)

// snapshot неизменяем после публикации: читатели берут указатель без блокировок,
// писатель (applier) собирает новый и подменяет целиком.
type snapshot struct {
	records []entities.Notification
	index   map[int64]int
	unread  int
}

func newSnapshot(records []entities.Notification) *snapshot {
	s := &snapshot{
		records: records,
		index:   make(map[int64]int, len(records)),
	}
	for i := range records {
		s.index[records[i].ID] = i
		if !records[i].IsRead {
			s.unread++
		}
	}
	return s
}

// withRead возвращает копию, где запись idx прочитана.
func (s *snapshot) withRead(idx int) *snapshot {
	records := slices.Clone(s.records)
	records[idx].IsRead = true
	return &snapshot{
		records: records,
		index:   s.index,
		unread:  s.unread - 1,
	}
}

// query фильтрует по роли. Записи с ролью all видны всем ролям.
func (s *snapshot) query(role *entities.Role) []entities.Notification {
	if role == nil {
		return slices.Clone(s.records)
	}

	result := make([]entities.Notification, 0, len(s.records))
	for _, r := range s.records {
		if r.Role == *role || r.Role == entities.RoleAll {
			result = append(result, r)
		}
	}
	return result
}

// sortRecords упорядочивает как таблица: новые первыми, при равном времени по id.
func sortRecords(records []entities.Notification) {
	slices.SortStableFunc(records, func(a, b entities.Notification) int {
		if a.Timestamp != b.Timestamp {
			if a.Timestamp > b.Timestamp {
				return -1
			}
			return 1
		}
		switch {
		case a.ID > b.ID:
			return -1
		case a.ID < b.ID:
			return 1
		default:
			return 0
		}
	})
}
