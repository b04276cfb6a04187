package masterdata

// Исторические псевдонимы полей в выгрузках мастер-данных.
// Один и тот же идентификатор встречается под разными ключами в зависимости
// от поколения выгрузки; разрешение - всегда "первое непустое из кандидатов"
// через pkg/fieldalias, без дублирования веток по месту использования

var (
	hallIDAliases       = []string{"hall_id", "hallId", "venue_id", "id"}
	hallNameAliases     = []string{"hall_name", "name", "title"}
	hallLocationAliases = []string{"location", "address", "place"}
	hallActiveAliases   = []string{"active", "is_active", "enabled"}

	slotIDAliases    = []string{"slot_id", "slotId", "id"}
	slotNameAliases  = []string{"slot_name", "name", "title"}
	slotStartAliases = []string{"start_time", "from_time", "begin"}
	slotEndAliases   = []string{"end_time", "to_time", "end"}

	eventTypeIDAliases   = []string{"event_type_id", "eventTypeId", "type_id", "id"}
	eventTypeNameAliases = []string{"event_type_name", "type_name", "name"}

	customerIDAliases    = []string{"customer_id", "customerId", "client_id", "id"}
	customerNameAliases  = []string{"customer_name", "client_name", "name"}
	customerPhoneAliases = []string{"phone", "mobile", "contact_no"}
)
