package llm_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/tenderdoc/internal/llm"
)

func TestNewClient(t *testing.T) {
	client := llm.NewClient("test-api-key")
	require.NotNil(t, client)
}

func TestNewClient_WithOptions(t *testing.T) {
	client := llm.NewClient("test-api-key",
		llm.WithBaseURL("https://custom.api.com/v1"),
		llm.WithDefaultModel(llm.ModelGPT4o),
	)
	require.NotNil(t, client)
}

func TestNewExtractor(t *testing.T) {
	client := llm.NewClient("test-api-key")
	extractor := llm.NewExtractor(client)
	require.NotNil(t, extractor)
}

func TestNewExtractor_WithModel(t *testing.T) {
	client := llm.NewClient("test-api-key")
	extractor := llm.NewExtractor(client, llm.WithModel(llm.ModelGPT4oMini))
	require.NotNil(t, extractor)
}

func TestExtractJSON_CodeBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "Here is the tender data:\n```json\n{\"ten_goi_thau\": \"Mua sắm thiết bị\"}\n```",
			expected: `{"ten_goi_thau": "Mua sắm thiết bị"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"ten_goi_thau\": \"Gói thầu số 2\"}\n```",
			expected: `{"ten_goi_thau": "Gói thầu số 2"}`,
		},
		{
			name:     "raw json object",
			input:    `{"gia_goi_thau": "1.500.000.000 VNĐ"}`,
			expected: `{"gia_goi_thau": "1.500.000.000 VNĐ"}`,
		},
		{
			name:     "raw json array",
			input:    `[{"id": 1}, {"id": 2}]`,
			expected: `[{"id": 1}, {"id": 2}]`,
		},
		{
			name:     "json with explanation",
			input:    "Kết quả:\n```json\n{\"ten_goi_thau\": \"ABC\"}\n```\nĐó là tên gói thầu.",
			expected: `{"ten_goi_thau": "ABC"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, llm.ExtractJSON(tt.input))
		})
	}
}

func TestTenderInfo_Parsing(t *testing.T) {
	jsonResp := `{
		"ten_goi_thau": "Mua sắm trang thiết bị văn phòng",
		"gia_goi_thau": "2.345.000.000 VNĐ"
	}`

	var info llm.TenderInfo
	err := json.Unmarshal([]byte(jsonResp), &info)
	require.NoError(t, err)

	assert.Equal(t, "Mua sắm trang thiết bị văn phòng", info.Name)
	assert.Equal(t, "2.345.000.000 VNĐ", info.RawPrice)
}

func TestParseTableBlock(t *testing.T) {
	response := `PARAGRAPH1: Trình tự thực hiện như sau.
TABLE_START
Số TT,Nội dung công việc
1,Chuẩn bị hồ sơ
"a)","Lập kế hoạch, trình phê duyệt"
2,Thẩm định
TABLE_END
Hết.`

	rows, err := llm.ParseTableBlock(response)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Số TT", "Nội dung công việc"}, rows[0])
	assert.Equal(t, []string{"a)", "Lập kế hoạch, trình phê duyệt"}, rows[2])
}

func TestParseTableBlock_SkipsProse(t *testing.T) {
	response := `TABLE_START
A,B
ghi chú không có dấu phẩy nằm giữa bảng? không
1,hai
TABLE_END`

	rows, err := llm.ParseTableBlock(response)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "hai"}, rows[1])
}

func TestParseTableBlock_Unterminated(t *testing.T) {
	_, err := llm.ParseTableBlock("TABLE_START\nA,B\n")
	assert.Error(t, err)
}

func TestParseTableBlock_NoMarkers(t *testing.T) {
	rows, err := llm.ParseTableBlock("no table here, just text")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestMarkdownStyles(t *testing.T) {
	assert.Equal(t, llm.MarkdownStyle("legal"), llm.MarkdownLegal)
	assert.Equal(t, llm.MarkdownStyle("purpose"), llm.MarkdownPurpose)
}

func TestModelConstants(t *testing.T) {
	models := []string{
		llm.ModelClaude35Sonnet,
		llm.ModelClaude3Haiku,
		llm.ModelGPT4oMini,
		llm.ModelGPT4o,
		llm.ModelGeminiFlash,
	}

	for _, m := range models {
		assert.NotEmpty(t, m)
		assert.Contains(t, m, "/") // All models have provider/model format
	}
}

func TestDefaultBaseURL(t *testing.T) {
	assert.Equal(t, "https://openrouter.ai/api/v1", llm.DefaultBaseURL)
}

// Benchmark tests

func BenchmarkExtractJSON(b *testing.B) {
	input := "Kết quả:\n```json\n{\"ten_goi_thau\": \"ABC\", \"gia_goi_thau\": \"1.000.000 VNĐ\"}\n```"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		llm.ExtractJSON(input)
	}
}
