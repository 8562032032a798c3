package match

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/fyerfyer/cardswap/checklist"
	"github.com/fyerfyer/cardswap/workpool"
)

// Partner 一位交换对象的清单文件
type Partner struct {
	Name string
	Path string
}

// Result 与一位交换对象的匹配结果
type Result struct {
	Partner string          `json:"partner"`
	Trade   checklist.Trade `json:"trade"`
	// 清单无法读取时的错误，此时Trade为空
	Err error `json:"-"`
}

// Rank 并发读取所有交换对象的清单，计算与mine之间可能的交换
// 结果按可交换次数降序排列，读取失败的排在最后
func Rank(ctx context.Context, pool *workpool.WorkPool, mine checklist.Lists, partners []Partner) ([]Result, error) {
	handles := make([]*workpool.TaskHandle, 0, len(partners))
	for _, p := range partners {
		p := p
		handle, err := pool.Submit(ctx, func(ctx context.Context) (any, error) {
			return evaluate(ctx, mine, p.Path)
		})
		if err != nil {
			return nil, fmt.Errorf("submitting %s: %w", p.Name, err)
		}
		handles = append(handles, handle)
	}

	results := make([]Result, len(partners))
	for i, handle := range handles {
		if err := handle.Wait(ctx); err != nil {
			return nil, err
		}
		value, err := handle.Result()
		results[i] = Result{Partner: partners[i].Name, Err: err}
		if err == nil {
			results[i].Trade = value.(checklist.Trade)
		}
	}

	sortResults(results)
	return results, nil
}

func evaluate(ctx context.Context, mine checklist.Lists, path string) (checklist.Trade, error) {
	if err := ctx.Err(); err != nil {
		return checklist.Trade{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return checklist.Trade{}, err
	}
	return checklist.TradeWith(mine, checklist.Parse(string(data))), nil
}

func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if (a.Err == nil) != (b.Err == nil) {
			return a.Err == nil
		}
		if a.Trade.Swaps() != b.Trade.Swaps() {
			return a.Trade.Swaps() > b.Trade.Swaps()
		}
		if len(a.Trade.Receive) != len(b.Trade.Receive) {
			return len(a.Trade.Receive) > len(b.Trade.Receive)
		}
		return a.Partner < b.Partner
	})
}
