package pagination

// Page кнопка номера страницы
type Page struct {
	Number  int
	Current bool
}

type View struct {
	Current      int
	TotalPages   int
	Pages        []Page
	Prev         int
	Next         int
	PrevDisabled bool
	NextDisabled bool
}

// TotalPages количество страниц, пустой результат - одна страница
func TotalPages(total, perPage int) int {
	if perPage < 1 || total <= 0 {
		return 1
	}
	return (total + perPage - 1) / perPage
}

// Clamp приводит запрошенную страницу к [1, totalPages]
func Clamp(requested, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if requested < 1 {
		return 1
	}
	if requested > totalPages {
		return totalPages
	}
	return requested
}

// Build кнопок ровно totalPages, текущая страница приводится к допустимому диапазону
func Build(currentPage, totalPages int) View {
	if totalPages < 1 {
		totalPages = 1
	}
	current := Clamp(currentPage, totalPages)
	pages := make([]Page, 0, totalPages)
	for p := 1; p <= totalPages; p++ {
		pages = append(pages, Page{Number: p, Current: p == current})
	}
	return View{
		Current:      current,
		TotalPages:   totalPages,
		Pages:        pages,
		Prev:         Clamp(current-1, totalPages),
		Next:         Clamp(current+1, totalPages),
		PrevDisabled: current == 1,
		NextDisabled: current == totalPages,
	}
}

// Slice границы страницы в списке из total элементов
func Slice(page, perPage, total int) (start, end int) {
	if perPage < 1 {
		return 0, 0
	}
	start = (page - 1) * perPage
	if start < 0 {
		start = 0
	}
	if start > total {
		start = total
	}
	end = start + perPage
	if end > total {
		end = total
	}
	return start, end
}
