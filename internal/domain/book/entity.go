package book

import (
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ISBN13Length ISBN-13固定长度
const ISBN13Length = 13

// Book 图书实体
// 设计说明:
// 1. ISBN13是主键,创建后不可修改
// 2. 作者、出版社、语种只保存外键ID,需要名称时由调用方按ID查找
// 3. 价格使用decimal(对应数据库decimal(10,2)),避免浮点误差
type Book struct {
	ISBN13        string
	Title         string
	Price         decimal.Decimal
	DatePublished *time.Time // 出版日期(数据库允许为空)
	AuthorID      uint
	PublisherID   uint
	LanguageID    uint
}

// Details 图书可编辑信息(除ISBN外的全部字段)
type Details struct {
	Title         string
	Price         decimal.Decimal
	DatePublished time.Time
	AuthorID      uint
	PublisherID   uint
	LanguageID    uint
}

// NewBook 创建新图书(工厂方法)
// 业务规则:
// - ISBN必须正好13个字符
// - 价格必须>0
func NewBook(isbn13 string, d Details) (*Book, error) {
	if err := ValidateISBN13(isbn13); err != nil {
		return nil, err
	}

	b := &Book{ISBN13: isbn13}
	if err := b.Apply(d); err != nil {
		return nil, err
	}
	return b, nil
}

// Apply 覆盖可编辑字段(领域行为)
func (b *Book) Apply(d Details) error {
	if !d.Price.IsPositive() {
		return ErrInvalidPrice
	}

	published := d.DatePublished
	b.Title = d.Title
	b.Price = d.Price
	b.DatePublished = &published
	b.AuthorID = d.AuthorID
	b.PublisherID = d.PublisherID
	b.LanguageID = d.LanguageID
	return nil
}

// ValidateISBN13 校验ISBN长度
// 只要求正好13个字符,不校验校验位
func ValidateISBN13(isbn13 string) error {
	if utf8.RuneCountInString(isbn13) != ISBN13Length {
		return ErrInvalidISBN
	}
	return nil
}
