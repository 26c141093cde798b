package sample

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"histopt/infra/errorx"
	"histopt/infra/errorx/errCode"

	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// ParseLines 每行一个数, 跳过空行和 # 注释行
func ParseLines(r io.Reader) ([]float64, error) {
	var out []float64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		v, err := parseNumber(s)
		if err != nil {
			return nil, errorx.Wrap(errCode.PARSE_ERROR, err, fmt.Sprintf("line %d", line))
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, errorx.Wrap(errCode.IO_ERROR, err, "read sample")
	}
	return out, nil
}

// ParseJSON 按 gjson 路径取数, 如 "data.#.px"; 数值型字符串同样接受
func ParseJSON(doc []byte, path string) ([]float64, error) {
	if !gjson.ValidBytes(doc) {
		return nil, errorx.New(errCode.PARSE_ERROR, "invalid json")
	}
	res := gjson.GetBytes(doc, path)
	if !res.Exists() {
		return nil, errorx.New(errCode.EMPTY_VALUE, fmt.Sprintf("json path %q not found", path))
	}

	items := []gjson.Result{res}
	if res.IsArray() {
		items = res.Array()
	}
	out := make([]float64, 0, len(items))
	for i, it := range items {
		switch it.Type {
		case gjson.Number:
			out = append(out, it.Float())
		case gjson.String:
			v, err := parseNumber(it.Str)
			if err != nil {
				return nil, errorx.Wrap(errCode.PARSE_ERROR, err, fmt.Sprintf("%s[%d]", path, i))
			}
			out = append(out, v)
		default:
			return nil, errorx.New(errCode.PARSE_ERROR, fmt.Sprintf("%s[%d]: not a number: %s", path, i, it.Raw))
		}
	}
	return out, nil
}

func parseNumber(s string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	f, _ := d.Float64()
	return f, nil
}
