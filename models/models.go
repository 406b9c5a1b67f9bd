package models

import "github.com/shopspring/decimal"

// Сущность Тендера (закупки)
type Tender struct {
	ID     int    `db:"id" json:"id"`
	Name   string `db:"name" json:"name"`
	Status string `db:"status" json:"status"`
}

// Состояние комплектующей (например, "in reserve")
type ComponentState struct {
	Kind string `db:"kind" json:"kind"`
}

// Сущность Комплектующей. Заголовок (IsHeader) группирует позиции одной категории,
// у остальных ParentID указывает на заголовок того же тендера.
type Component struct {
	ID             int             `json:"id"`
	TenderID       int             `json:"tenderId"`
	ParentID       *int            `json:"parentId,omitempty"`
	IsHeader       bool            `json:"isHeader"`
	HeaderCategory string          `json:"headerCategory,omitempty"`
	PurchaseName   *string         `json:"purchaseName,omitempty"`
	PurchaseCount  decimal.Decimal `json:"purchaseCount"`
	AssemblyNote   *string         `json:"assemblyNote,omitempty"`
	State          *ComponentState `json:"state,omitempty"`
}

// Сущность Комментария к тендеру
type Comment struct {
	ID          int    `db:"id" json:"id"`
	TenderID    int    `db:"tender_id" json:"tenderId"`
	Text        string `db:"text" json:"text"`
	IsTechnical bool   `db:"is_technical" json:"isTechnical"`
}

// Должность сотрудника
type Position struct {
	Kind string `db:"kind" json:"kind"`
}

// Сущность Сотрудника
type Employee struct {
	ID          int      `db:"id" json:"id"`
	Username    string   `db:"username" json:"username"`
	Position    Position `db:"position" json:"position"`
	IsAvailable bool     `db:"is_available" json:"isAvailable"`
}

// Связь тендер-сотрудник. Username подтягивается из employee при чтении.
type TenderAssignment struct {
	ID         int    `db:"id" json:"id"`
	TenderID   int    `db:"tender_id" json:"tenderId"`
	EmployeeID int    `db:"employee_id" json:"employeeId"`
	Username   string `db:"username" json:"username"`
}
