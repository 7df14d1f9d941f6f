package rdb

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookstore-admin/pkg/metrics"
)

// txKey context中保存事务DB的key
type txKey struct{}

// getDB 从context获取事务DB,如果没有则使用默认DB
func getDB(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}

// isDuplicateError 判断是否为唯一约束/主键冲突
// TranslateError开启后三种驱动都会翻译成gorm.ErrDuplicatedKey,
// 错误信息匹配兜底:
// - mysql 1062: Duplicate entry 'xxx' for key 'yyy'
// - sqlite: UNIQUE constraint failed
// - postgres 23505: duplicate key value violates unique constraint
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

// observe 记录仓储调用的次数和耗时
//
//	defer observe("book", "list")(&err)
func observe(entity, op string) func(*error) {
	start := time.Now()
	return func(errp *error) {
		var err error
		if errp != nil {
			err = *errp
		}
		metrics.ObserveDBOperation(entity, op, start, err)
	}
}
