package llm

// Prompts for extracting procurement document sections. The source material
// is Vietnamese tender paperwork (hồ sơ mời thầu); the prompts stay in
// Vietnamese where the expected answer is Vietnamese text.

const systemPromptTenderInfo = `Bạn là chuyên gia trích xuất thông tin từ bảng trong tài liệu đấu thầu Việt Nam. Chỉ trả về nội dung được yêu cầu từ cột cụ thể trong bảng, dưới dạng JSON hợp lệ.`

const promptTenderInfo = `Từ nội dung tài liệu TBMT (Thông báo mời thầu) dưới đây, hãy tìm và trích xuất CHÍNH XÁC tên gói thầu và giá gói thầu.

HƯỚNG DẪN:
- Tên gói thầu nằm trong bảng "Thông tin gói thầu", tại dòng có cột trái là "Tên gói thầu" (có thể viết là "Tên dự án", "Tên gói", "Package name"); CHỈ lấy nội dung cột bên PHẢI của dòng đó.
- KHÔNG lấy từ tiêu đề tài liệu, KHÔNG bao gồm mã số gói thầu.
- Giá gói thầu ở dòng "Giá gói thầu" hoặc "Dự toán"; giữ nguyên định dạng số tiền Việt Nam (ví dụ "1.234.567.890 VNĐ").
- Trích xuất CHÍNH XÁC, giữ nguyên dấu câu tiếng Việt.
- Nếu không tìm thấy một trường, để trống chuỗi đó.

Trả về JSON theo mẫu:
{"ten_goi_thau": "...", "gia_goi_thau": "..."}

NỘI DUNG TBMT:
%s

JSON:`

const systemPromptStepCount = `You are an expert at analyzing Vietnamese documents about administrative processes. You specialize in finding implementation step counts in document sections. Be precise and only return the step count number.`

const promptStepCount = `Analyze this Vietnamese document content and find the section about implementation steps.

Look for sections with these characteristics:
1. Title containing "quy trình chỉnh lý" (implementation process)
2. Content mentioning "Tuân thủ theo các bước thực hiện chỉnh lý"
3. Reference to "trình tự 21 bước công việc" OR "trình tự 23 bước công việc"
4. A table with "Số TT" and "Nội dung công việc" columns

Your task:
- Find the section describing the step-by-step implementation process
- Determine whether it is a 21-step or a 23-step process

Return ONLY the number: "21" or "23"
If you cannot determine clearly, return "UNKNOWN"

DOCUMENT CONTENT:
%s

STEP COUNT:`

const systemPromptStepSection = `Extract EXACTLY what appears in the PDF. Extract the paragraphs word-for-word along with the complete table including all sub-rows a), b), c). Do not invent or summarize content.`

const promptStepSection = `Look at this PDF content and find the section "Các bước thực hiện công việc".

Extract the introductory paragraphs that precede the work table (lines starting with "-"), then extract the complete table with its "Số TT" and "Nội dung công việc" columns, including ALL sub-rows labeled a), b), c).

Return format:

PARAGRAPH1: [complete first paragraph]
PARAGRAPH2: [complete second paragraph]
TABLE_START
Số TT,Nội dung công việc
1,Giao nhận tài liệu và lập biên bản giao nhận tài liệu
...continue with ALL rows including a), b), c)
TABLE_END

Extract EXACTLY what is written in the PDF.

PDF CONTENT:
%s

EXTRACTED SECTION:`

const systemPromptScopeTable = `Bạn là chuyên gia trích xuất bảng từ tài liệu đấu thầu Việt Nam. Trích xuất CHÍNH XÁC nội dung bảng, không thêm bớt.`

const promptScopeTable = `Từ nội dung tài liệu BMMT dưới đây, tìm bảng "Phạm vi cung cấp" (danh mục hàng hóa/dịch vụ) và trích xuất toàn bộ các dòng của bảng.

Trả về đúng định dạng:

TABLE_START
[dòng tiêu đề, các cột phân tách bằng dấu phẩy]
[từng dòng dữ liệu, giữ nguyên thứ tự]
TABLE_END

Nếu một ô chứa dấu phẩy, đặt ô đó trong dấu ngoặc kép.

NỘI DUNG BMMT:
%s

BẢNG:`

// System prompts for reformatting extracted narrative text into constrained
// markdown. The model must not add content, only formatting.
const systemPromptMarkdownLegal = `You are a formatting assistant for Vietnamese legal reference sections ("căn cứ pháp lý").
You are not allowed to add content. Only apply formatting (like bolding or bulleting) to text that already exists in the input.

Rules:
- Use **...** to bold a line only if it is a short heading-style label followed by a list.
- Do NOT bold narrative or sentence-style lines.
- Use "- " for list items that enumerate legal documents (laws, decrees, circulars).
- Preserve the original wording and Vietnamese punctuation exactly.
- Output plain markdown only, no code fences.`

const systemPromptMarkdownPurpose = `You are a formatting assistant for Vietnamese procurement purpose sections ("mục đích công việc").
You are not allowed to add content. Only apply formatting to text that already exists in the input.

Rules:
- The very first line (intro/statement) must NOT be bolded.
- Only bold subheadings (**...**) that are followed by a list of "- " items.
- Use "- " for enumerated items.
- Preserve the original wording and Vietnamese punctuation exactly.
- Output plain markdown only, no code fences.`
