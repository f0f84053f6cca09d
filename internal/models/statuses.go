package models

// OrderStatus - статус жизненного цикла заказа.
// Сами переходы статусов этим сервисом не контролируются.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusInProgress OrderStatus = "in_progress"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// UserRole - роль пользователя на площадке. Хранится как свободный
// текст, конвенционально "buyer" или "seller".
type UserRole string

const (
	UserRoleBuyer  UserRole = "buyer"
	UserRoleSeller UserRole = "seller"
)

// Имена коллекций в MongoDB: lowercase имени сущности.
const (
	CollectionUser   = "user"
	CollectionGig    = "gig"
	CollectionOrder  = "order"
	CollectionReview = "review"
)
