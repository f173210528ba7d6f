// Package adapters はsymbollistフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"fmt"

	"quote_aggregator/internal/feature/symbollist/domain/entity"
	"quote_aggregator/internal/feature/symbollist/usecase"

	"gorm.io/gorm"
)

// SymbolModel は Symbol テーブルの行を表します。
// メタデータ列は初期化前は NULL のためポインタで受けます。
type SymbolModel struct {
	ID          string  `gorm:"primaryKey;size:32"`
	Initialized bool    `gorm:"not null;default:false"`
	Name        *string `gorm:"type:text"`
	Image       *string `gorm:"type:text"`
	Description *string `gorm:"type:text"`
}

// TableName はホスト側で作成済みのテーブル名を返します。
func (SymbolModel) TableName() string {
	return "Symbol"
}

func toEntity(m SymbolModel) entity.Symbol {
	return entity.Symbol{
		ID:          m.ID,
		Initialized: m.Initialized,
		Name:        deref(m.Name),
		Image:       deref(m.Image),
		Description: deref(m.Description),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// symbolPostgres はSymbolRepositoryインターフェースのPostgreSQL実装です。
type symbolPostgres struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolPostgres)(nil)

// NewSymbolRepository は指定されたDB接続でsymbolPostgresリポジトリの新しいインスタンスを生成します。
func NewSymbolRepository(db *gorm.DB) *symbolPostgres {
	return &symbolPostgres{db: db}
}

// ListAll はid順にすべての銘柄を返します。
func (r *symbolPostgres) ListAll(ctx context.Context) ([]entity.Symbol, error) {
	var rows []SymbolModel
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Symbol, 0, len(rows))
	for _, m := range rows {
		out = append(out, toEntity(m))
	}
	return out, nil
}

// UpdateMetadata は指定idの銘柄を初期化済みにし、メタデータを書き込みます。
// 該当行が存在しない場合は usecase.ErrSymbolNotFound を返します。
func (r *symbolPostgres) UpdateMetadata(ctx context.Context, id string, md entity.Metadata) error {
	res := r.db.WithContext(ctx).
		Model(&SymbolModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"initialized": true,
			"name":        md.Name,
			"image":       md.Image,
			"description": md.Description,
		})
	if res.Error != nil {
		return fmt.Errorf("update symbol %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update symbol %s: %w", id, usecase.ErrSymbolNotFound)
	}
	return nil
}
