package nlp // NLP注释协作方，产出句子边界和命名实体

import (
	"context"
	"fmt"

	prose "github.com/jdkato/prose/v2"

	"resume-insight-go/internal/types"
)

// ProseAnnotator 基于prose库的注释器实现
// 管线只消费它输出的句子和实体span，不依赖其内部行为
type ProseAnnotator struct{}

// NewProseAnnotator 创建注释器实例
func NewProseAnnotator() *ProseAnnotator {
	return &ProseAnnotator{}
}

// Annotate 对规范化文本做句子切分和命名实体识别
func (a *ProseAnnotator) Annotate(ctx context.Context, text string) ([]types.Sentence, []types.Entity, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	doc, err := prose.NewDocument(text)
	if err != nil {
		return nil, nil, fmt.Errorf("prose注释失败: %w", err)
	}

	sentences := make([]types.Sentence, 0, len(doc.Sentences()))
	for _, s := range doc.Sentences() {
		sentences = append(sentences, types.Sentence{Text: s.Text})
	}

	entities := make([]types.Entity, 0, len(doc.Entities()))
	for _, e := range doc.Entities() {
		entities = append(entities, types.Entity{Text: e.Text, Label: e.Label})
	}

	return sentences, entities, nil
}
