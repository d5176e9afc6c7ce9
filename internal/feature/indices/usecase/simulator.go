package usecase

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// maxSwingBasisPoints は疑似データの最大変動幅（±2%）をベーシスポイントで表します。
const maxSwingBasisPoints = 200

var hundred = decimal.NewFromInt(100)

// Move は基準価格に対する1回分の疑似的な値動きです。
type Move struct {
	Price         float64
	Change        float64
	ChangePercent float64
}

// Simulator は基準価格から疑似的な値動きを生成します。
// 変動率は [-2%, +2%) の範囲で0.01%刻みの一様分布から選ばれます。
type Simulator struct {
	intn func(n int) int
}

// NewSimulator は乱数関数を指定してSimulatorを生成します。
// intnは [0, n) の整数を返す必要があります。nilの場合はmath/rand/v2を使用します。
// 複数のgoroutineから同時に呼ばれるため、intnはスレッドセーフである必要があります。
func NewSimulator(intn func(n int) int) *Simulator {
	if intn == nil {
		intn = rand.IntN
	}
	return &Simulator{intn: intn}
}

// Move は基準価格basePriceに対する疑似的な値動きを生成します。
// 価格・変動幅・変動率はすべて小数点以下2桁に丸められます。
func (s *Simulator) Move(basePrice float64) Move {
	bp := s.intn(2*maxSwingBasisPoints) - maxSwingBasisPoints
	pct := decimal.New(int64(bp), -2)

	base := decimal.NewFromFloat(basePrice)
	change := base.Mul(pct).Div(hundred)
	price := base.Add(change)

	return Move{
		Price:         price.Round(2).InexactFloat64(),
		Change:        change.Round(2).InexactFloat64(),
		ChangePercent: pct.Round(2).InexactFloat64(),
	}
}

// Round2 は値を小数点以下2桁に丸めます（0.5は0から遠い方向へ丸めます）。
func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
