// Package console 交互式菜单
//
// 菜单和列表写到stdout,日志写到stderr。
// 操作员输入错误(4xxxx)只放弃当前操作,其余错误向上返回并终止程序。
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/bookstore-admin/internal/infrastructure/config"
	apperrors "github.com/xiebiao/bookstore-admin/pkg/errors"
)

// Console 行输入/输出
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	pause bool
	clear bool
}

// New 创建Console
func New(in io.Reader, out io.Writer, ui config.UIConfig) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		pause: ui.Pause,
		clear: ui.ClearScreen,
	}
}

func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) Println(args ...interface{}) {
	fmt.Fprintln(c.out, args...)
}

// Clear 清屏(ANSI)
func (c *Console) Clear() {
	if c.clear {
		fmt.Fprint(c.out, "\033[H\033[2J")
	}
}

// ReadLine 读取一行,去掉行尾换行符
// 输入结束且没有读到内容时返回io.EOF
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Prompt 空一行后输出提示并读取输入
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, "\n"+prompt)
	return c.ReadLine()
}

// Wait 提示按键继续并等待一行输入
// 输入已结束时直接返回,由菜单循环在下一次读取时退出
func (c *Console) Wait() error {
	c.Println(PromptPressAnyKey)
	if !c.pause {
		return nil
	}
	if _, err := c.ReadLine(); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Done 输出操作结果并等待
func (c *Console) Done(msg string) error {
	c.Println("\n" + msg + "\n")
	return c.Wait()
}

// Select 输出"{i}. {label}"列表并读取序号,返回从0开始的下标
// 只接受[1, len(labels)]范围内的整数
func (c *Console) Select(prompt string, labels []string) (int, error) {
	for i, label := range labels {
		c.Printf("%d. %s\n", i+1, label)
	}
	line, err := c.Prompt(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(labels) {
		return 0, apperrors.ErrInvalidOption
	}
	return n - 1, nil
}

// ReadAmount 读取大于0的整数
func (c *Console) ReadAmount() (int, error) {
	line, err := c.Prompt(PromptEnterAmount)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n <= 0 {
		return 0, apperrors.ErrInvalidOption
	}
	return n, nil
}

// ReadPrice 读取大于0的价格
func (c *Console) ReadPrice() (decimal.Decimal, error) {
	line, err := c.Prompt(PromptEnterPrice)
	if err != nil {
		return decimal.Zero, err
	}
	price, err := decimal.NewFromString(strings.TrimSpace(line))
	if err != nil || !price.IsPositive() {
		return decimal.Zero, apperrors.ErrInvalidOption
	}
	return price, nil
}

// ReadDate 读取yyyy-mm-dd格式的日期
func (c *Console) ReadDate(prompt string) (time.Time, error) {
	line, err := c.Prompt(prompt)
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(line))
	if err != nil {
		return time.Time{}, apperrors.ErrInvalidOption
	}
	return t, nil
}

// formatDate 日期为空时输出空字符串
func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
