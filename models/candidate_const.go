package models

type StatusType string

const (
	StatusTypeStage StatusType = "stage" // статус выводится как есть
	StatusTypeRole  StatusType = "role"  // статус выводится как "Role: ..."
)

type ApplicationType string

const (
	ApplicationTypeActive   ApplicationType = "active"
	ApplicationTypeArchived ApplicationType = "archived"
)

type AvailabilityStatus string

const (
	AvailabilityAvailable    AvailabilityStatus = "Available"
	AvailabilityRequested    AvailabilityStatus = "Requested"
	AvailabilityNotRequested AvailabilityStatus = "Not Requested"
)

type FilterCategory string

const (
	FilterApplicationType FilterCategory = "application_type"
	FilterSource          FilterCategory = "source"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

type SortField string

const (
	SortFieldLastActivity SortField = "last_activity"
	SortFieldName         SortField = "name"
)

type SortValue string

const (
	SortActivityDesc SortValue = "activity_desc"
	SortActivityAsc  SortValue = "activity_asc"
	SortNameAsc      SortValue = "name_asc"
	SortNameDesc     SortValue = "name_desc"
)

// DefaultSort сортировка при открытии страницы
const DefaultSort = SortActivityDesc

type SortOption struct {
	Label     string    `json:"label"`
	Value     SortValue `json:"value"`
	SortField SortField `json:"sort_field"`
	SortOrder SortOrder `json:"sort_order"`
}

var SortOptions = []SortOption{
	{Label: "Last Activity (new to old)", Value: SortActivityDesc, SortField: SortFieldLastActivity, SortOrder: SortOrderDesc},
	{Label: "Last Activity (old to new)", Value: SortActivityAsc, SortField: SortFieldLastActivity, SortOrder: SortOrderAsc},
	{Label: "Name (A to Z)", Value: SortNameAsc, SortField: SortFieldName, SortOrder: SortOrderAsc},
	{Label: "Name (Z to A)", Value: SortNameDesc, SortField: SortFieldName, SortOrder: SortOrderDesc},
}

// FindSortOption неизвестное значение - ok = false
func FindSortOption(value SortValue) (option SortOption, ok bool) {
	for _, item := range SortOptions {
		if item.Value == value {
			return item, true
		}
	}
	return SortOption{}, false
}
