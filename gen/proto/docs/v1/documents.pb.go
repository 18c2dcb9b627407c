// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: docs/v1/documents.proto

package docsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type UploadDocumentRequest struct {
	state    protoimpl.MessageState `protogen:"open.v1"`
	Filename string                 `protobuf:"bytes,1,opt,name=filename,proto3" json:"filename,omitempty"`
	// base64-encoded file content
	EncodedFile string `protobuf:"bytes,2,opt,name=encoded_file,json=encodedFile,proto3" json:"encoded_file,omitempty"`
	ContentType string `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	// closed enumeration, e.g. PASSPORT, CONTRACT, INVOICE
	DocumentType string `protobuf:"bytes,4,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	// closed enumeration: DIGITAL, BACKOFFICE, API_INTEGRATION
	Channel string `protobuf:"bytes,5,opt,name=channel,proto3" json:"channel,omitempty"`
	// required for OPERATOR/ADMIN, ignored for CLIENT
	CustomerId    string `protobuf:"bytes,6,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	CorrelationId string `protobuf:"bytes,7,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	UserId        string `protobuf:"bytes,8,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	UserRole      string `protobuf:"bytes,9,opt,name=user_role,json=userRole,proto3" json:"user_role,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentRequest) Reset() {
	*x = UploadDocumentRequest{}
	mi := &file_docs_v1_documents_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentRequest) ProtoMessage() {}

func (x *UploadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_documents_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentRequest.ProtoReflect.Descriptor instead.
func (*UploadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_documents_proto_rawDescGZIP(), []int{0}
}

func (x *UploadDocumentRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *UploadDocumentRequest) GetEncodedFile() string {
	if x != nil {
		return x.EncodedFile
	}
	return ""
}

func (x *UploadDocumentRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *UploadDocumentRequest) GetChannel() string {
	if x != nil {
		return x.Channel
	}
	return ""
}

func (x *UploadDocumentRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *UploadDocumentRequest) GetCorrelationId() string {
	if x != nil {
		return x.CorrelationId
	}
	return ""
}

func (x *UploadDocumentRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *UploadDocumentRequest) GetUserRole() string {
	if x != nil {
		return x.UserRole
	}
	return ""
}

type UploadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	DocumentId    string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	Message       string                 `protobuf:"bytes,4,opt,name=message,proto3" json:"message,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *UploadDocumentResponse) Reset() {
	*x = UploadDocumentResponse{}
	mi := &file_docs_v1_documents_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *UploadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UploadDocumentResponse) ProtoMessage() {}

func (x *UploadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_documents_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UploadDocumentResponse.ProtoReflect.Descriptor instead.
func (*UploadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_documents_proto_rawDescGZIP(), []int{1}
}

func (x *UploadDocumentResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *UploadDocumentResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *UploadDocumentResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *UploadDocumentResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type Document struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	ContentType   string                 `protobuf:"bytes,3,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Size          int64                  `protobuf:"varint,4,opt,name=size,proto3" json:"size,omitempty"`
	DocumentType  string                 `protobuf:"bytes,5,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Channel       string                 `protobuf:"bytes,6,opt,name=channel,proto3" json:"channel,omitempty"`
	Status        string                 `protobuf:"bytes,7,opt,name=status,proto3" json:"status,omitempty"`
	FileUrl       string                 `protobuf:"bytes,8,opt,name=file_url,json=fileUrl,proto3" json:"file_url,omitempty"`
	CorrelationId string                 `protobuf:"bytes,9,opt,name=correlation_id,json=correlationId,proto3" json:"correlation_id,omitempty"`
	CustomerId    string                 `protobuf:"bytes,10,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	UserId        string                 `protobuf:"bytes,11,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,12,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Document) Reset() {
	*x = Document{}
	mi := &file_docs_v1_documents_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Document) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Document) ProtoMessage() {}

func (x *Document) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_documents_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Document.ProtoReflect.Descriptor instead.
func (*Document) Descriptor() ([]byte, []int) {
	return file_docs_v1_documents_proto_rawDescGZIP(), []int{2}
}

func (x *Document) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Document) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Document) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *Document) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

func (x *Document) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *Document) GetChannel() string {
	if x != nil {
		return x.Channel
	}
	return ""
}

func (x *Document) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Document) GetFileUrl() string {
	if x != nil {
		return x.FileUrl
	}
	return ""
}

func (x *Document) GetCorrelationId() string {
	if x != nil {
		return x.CorrelationId
	}
	return ""
}

func (x *Document) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *Document) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Document) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type SearchDocumentsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// caller identity, from the auth layer
	CurrentUserId   string `protobuf:"bytes,1,opt,name=current_user_id,json=currentUserId,proto3" json:"current_user_id,omitempty"`
	CurrentUserRole string `protobuf:"bytes,2,opt,name=current_user_role,json=currentUserRole,proto3" json:"current_user_role,omitempty"`
	// filters; empty values are ignored
	UserId          string `protobuf:"bytes,3,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	CustomerId      string `protobuf:"bytes,4,opt,name=customer_id,json=customerId,proto3" json:"customer_id,omitempty"`
	UploadDateStart string `protobuf:"bytes,5,opt,name=upload_date_start,json=uploadDateStart,proto3" json:"upload_date_start,omitempty"` // YYYY-MM-DD
	UploadDateEnd   string `protobuf:"bytes,6,opt,name=upload_date_end,json=uploadDateEnd,proto3" json:"upload_date_end,omitempty"`       // YYYY-MM-DD
	Filename        string `protobuf:"bytes,7,opt,name=filename,proto3" json:"filename,omitempty"`                                        // substring match
	ContentType     string `protobuf:"bytes,8,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	DocumentType    string `protobuf:"bytes,9,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	Status          string `protobuf:"bytes,10,opt,name=status,proto3" json:"status,omitempty"`
	Channel         string `protobuf:"bytes,11,opt,name=channel,proto3" json:"channel,omitempty"`
	// UPLOAD_DATE (default), FILENAME, DOCUMENT_TYPE, STATUS
	SortBy string `protobuf:"bytes,12,opt,name=sort_by,json=sortBy,proto3" json:"sort_by,omitempty"`
	// ASC (default) or DESC
	SortDirection string `protobuf:"bytes,13,opt,name=sort_direction,json=sortDirection,proto3" json:"sort_direction,omitempty"`
	Page          int32  `protobuf:"varint,14,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32  `protobuf:"varint,15,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchDocumentsRequest) Reset() {
	*x = SearchDocumentsRequest{}
	mi := &file_docs_v1_documents_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchDocumentsRequest) ProtoMessage() {}

func (x *SearchDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_documents_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchDocumentsRequest.ProtoReflect.Descriptor instead.
func (*SearchDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_documents_proto_rawDescGZIP(), []int{3}
}

func (x *SearchDocumentsRequest) GetCurrentUserId() string {
	if x != nil {
		return x.CurrentUserId
	}
	return ""
}

func (x *SearchDocumentsRequest) GetCurrentUserRole() string {
	if x != nil {
		return x.CurrentUserRole
	}
	return ""
}

func (x *SearchDocumentsRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *SearchDocumentsRequest) GetCustomerId() string {
	if x != nil {
		return x.CustomerId
	}
	return ""
}

func (x *SearchDocumentsRequest) GetUploadDateStart() string {
	if x != nil {
		return x.UploadDateStart
	}
	return ""
}

func (x *SearchDocumentsRequest) GetUploadDateEnd() string {
	if x != nil {
		return x.UploadDateEnd
	}
	return ""
}

func (x *SearchDocumentsRequest) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *SearchDocumentsRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *SearchDocumentsRequest) GetDocumentType() string {
	if x != nil {
		return x.DocumentType
	}
	return ""
}

func (x *SearchDocumentsRequest) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *SearchDocumentsRequest) GetChannel() string {
	if x != nil {
		return x.Channel
	}
	return ""
}

func (x *SearchDocumentsRequest) GetSortBy() string {
	if x != nil {
		return x.SortBy
	}
	return ""
}

func (x *SearchDocumentsRequest) GetSortDirection() string {
	if x != nil {
		return x.SortDirection
	}
	return ""
}

func (x *SearchDocumentsRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *SearchDocumentsRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type SearchDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Documents     []*Document            `protobuf:"bytes,1,rep,name=documents,proto3" json:"documents,omitempty"`
	TotalCount    int32                  `protobuf:"varint,2,opt,name=total_count,json=totalCount,proto3" json:"total_count,omitempty"`
	Page          int32                  `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchDocumentsResponse) Reset() {
	*x = SearchDocumentsResponse{}
	mi := &file_docs_v1_documents_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchDocumentsResponse) ProtoMessage() {}

func (x *SearchDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_documents_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchDocumentsResponse.ProtoReflect.Descriptor instead.
func (*SearchDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_documents_proto_rawDescGZIP(), []int{4}
}

func (x *SearchDocumentsResponse) GetDocuments() []*Document {
	if x != nil {
		return x.Documents
	}
	return nil
}

func (x *SearchDocumentsResponse) GetTotalCount() int32 {
	if x != nil {
		return x.TotalCount
	}
	return 0
}

func (x *SearchDocumentsResponse) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *SearchDocumentsResponse) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

type ExportDocumentsRequest struct {
	state         protoimpl.MessageState  `protogen:"open.v1"`
	Criteria      *SearchDocumentsRequest `protobuf:"bytes,1,opt,name=criteria,proto3" json:"criteria,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsRequest) Reset() {
	*x = ExportDocumentsRequest{}
	mi := &file_docs_v1_documents_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsRequest) ProtoMessage() {}

func (x *ExportDocumentsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_documents_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsRequest.ProtoReflect.Descriptor instead.
func (*ExportDocumentsRequest) Descriptor() ([]byte, []int) {
	return file_docs_v1_documents_proto_rawDescGZIP(), []int{5}
}

func (x *ExportDocumentsRequest) GetCriteria() *SearchDocumentsRequest {
	if x != nil {
		return x.Criteria
	}
	return nil
}

type ExportDocumentsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportDocumentsResponse) Reset() {
	*x = ExportDocumentsResponse{}
	mi := &file_docs_v1_documents_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportDocumentsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportDocumentsResponse) ProtoMessage() {}

func (x *ExportDocumentsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_docs_v1_documents_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportDocumentsResponse.ProtoReflect.Descriptor instead.
func (*ExportDocumentsResponse) Descriptor() ([]byte, []int) {
	return file_docs_v1_documents_proto_rawDescGZIP(), []int{6}
}

func (x *ExportDocumentsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

func (x *ExportDocumentsResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

var File_docs_v1_documents_proto protoreflect.FileDescriptor

const file_docs_v1_documents_proto_rawDesc = "" +
	"\n" +
	"\x17docs/v1/documents.proto\x12\adocs.v1\"\xb6\x02\n" +
	"\x15UploadDocumentRequest\x12\x1a\n" +
	"\bfilename\x18\x01 \x01(\tR\bfilename\x12!\n" +
	"\fencoded_file\x18\x02 \x01(\tR\vencodedFile\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12#\n" +
	"\rdocument_type\x18\x04 \x01(\tR\fdocumentType\x12\x18\n" +
	"\achannel\x18\x05 \x01(\tR\achannel\x12\x1f\n" +
	"\vcustomer_id\x18\x06 \x01(\tR\n" +
	"customerId\x12%\n" +
	"\x0ecorrelation_id\x18\a \x01(\tR\rcorrelationId\x12\x17\n" +
	"\auser_id\x18\b \x01(\tR\x06userId\x12\x1b\n" +
	"\tuser_role\x18\t \x01(\tR\buserRole\"\x82\x01\n" +
	"\x16UploadDocumentResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12\x18\n" +
	"\amessage\x18\x04 \x01(\tR\amessage\"\xdf\x02\n" +
	"\bDocument\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\x03 \x01(\tR\vcontentType\x12\x12\n" +
	"\x04size\x18\x04 \x01(\x03R\x04size\x12#\n" +
	"\rdocument_type\x18\x05 \x01(\tR\fdocumentType\x12\x18\n" +
	"\achannel\x18\x06 \x01(\tR\achannel\x12\x16\n" +
	"\x06status\x18\a \x01(\tR\x06status\x12\x19\n" +
	"\bfile_url\x18\b \x01(\tR\afileUrl\x12%\n" +
	"\x0ecorrelation_id\x18\t \x01(\tR\rcorrelationId\x12\x1f\n" +
	"\vcustomer_id\x18\n" +
	" \x01(\tR\n" +
	"customerId\x12\x17\n" +
	"\auser_id\x18\v \x01(\tR\x06userId\x12\x1d\n" +
	"\n" +
	"created_at\x18\f \x01(\tR\tcreatedAt\"\x81\x04\n" +
	"\x16SearchDocumentsRequest\x12&\n" +
	"\x0fcurrent_user_id\x18\x01 \x01(\tR\rcurrentUserId\x12*\n" +
	"\x11current_user_role\x18\x02 \x01(\tR\x0fcurrentUserRole\x12\x17\n" +
	"\auser_id\x18\x03 \x01(\tR\x06userId\x12\x1f\n" +
	"\vcustomer_id\x18\x04 \x01(\tR\n" +
	"customerId\x12*\n" +
	"\x11upload_date_start\x18\x05 \x01(\tR\x0fuploadDateStart\x12&\n" +
	"\x0fupload_date_end\x18\x06 \x01(\tR\ruploadDateEnd\x12\x1a\n" +
	"\bfilename\x18\a \x01(\tR\bfilename\x12!\n" +
	"\fcontent_type\x18\b \x01(\tR\vcontentType\x12#\n" +
	"\rdocument_type\x18\t \x01(\tR\fdocumentType\x12\x16\n" +
	"\x06status\x18\n" +
	" \x01(\tR\x06status\x12\x18\n" +
	"\achannel\x18\v \x01(\tR\achannel\x12\x17\n" +
	"\asort_by\x18\f \x01(\tR\x06sortBy\x12%\n" +
	"\x0esort_direction\x18\r \x01(\tR\rsortDirection\x12\x12\n" +
	"\x04page\x18\x0e \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x0f \x01(\x05R\bpageSize\"\x9c\x01\n" +
	"\x17SearchDocumentsResponse\x12/\n" +
	"\tdocuments\x18\x01 \x03(\v2\x11.docs.v1.DocumentR\tdocuments\x12\x1f\n" +
	"\vtotal_count\x18\x02 \x01(\x05R\n" +
	"totalCount\x12\x12\n" +
	"\x04page\x18\x03 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x04 \x01(\x05R\bpageSize\"U\n" +
	"\x16ExportDocumentsRequest\x12;\n" +
	"\bcriteria\x18\x01 \x01(\v2\x1f.docs.v1.SearchDocumentsRequestR\bcriteria\"I\n" +
	"\x17ExportDocumentsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename2\x91\x02\n" +
	"\x10DocumentsService\x12Q\n" +
	"\x0eUploadDocument\x12\x1e.docs.v1.UploadDocumentRequest\x1a\x1f.docs.v1.UploadDocumentResponse\x12T\n" +
	"\x0fSearchDocuments\x12\x1f.docs.v1.SearchDocumentsRequest\x1a .docs.v1.SearchDocumentsResponse\x12T\n" +
	"\x0fExportDocuments\x12\x1f.docs.v1.ExportDocumentsRequest\x1a .docs.v1.ExportDocumentsResponseB#Z!docvault/gen/proto/docs/v1;docsv1b\x06proto3"

var (
	file_docs_v1_documents_proto_rawDescOnce sync.Once
	file_docs_v1_documents_proto_rawDescData []byte
)

func file_docs_v1_documents_proto_rawDescGZIP() []byte {
	file_docs_v1_documents_proto_rawDescOnce.Do(func() {
		file_docs_v1_documents_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_docs_v1_documents_proto_rawDesc), len(file_docs_v1_documents_proto_rawDesc)))
	})
	return file_docs_v1_documents_proto_rawDescData
}

var file_docs_v1_documents_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_docs_v1_documents_proto_goTypes = []any{
	(*UploadDocumentRequest)(nil),   // 0: docs.v1.UploadDocumentRequest
	(*UploadDocumentResponse)(nil),  // 1: docs.v1.UploadDocumentResponse
	(*Document)(nil),                // 2: docs.v1.Document
	(*SearchDocumentsRequest)(nil),  // 3: docs.v1.SearchDocumentsRequest
	(*SearchDocumentsResponse)(nil), // 4: docs.v1.SearchDocumentsResponse
	(*ExportDocumentsRequest)(nil),  // 5: docs.v1.ExportDocumentsRequest
	(*ExportDocumentsResponse)(nil), // 6: docs.v1.ExportDocumentsResponse
}
var file_docs_v1_documents_proto_depIdxs = []int32{
	2, // 0: docs.v1.SearchDocumentsResponse.documents:type_name -> docs.v1.Document
	3, // 1: docs.v1.ExportDocumentsRequest.criteria:type_name -> docs.v1.SearchDocumentsRequest
	0, // 2: docs.v1.DocumentsService.UploadDocument:input_type -> docs.v1.UploadDocumentRequest
	3, // 3: docs.v1.DocumentsService.SearchDocuments:input_type -> docs.v1.SearchDocumentsRequest
	5, // 4: docs.v1.DocumentsService.ExportDocuments:input_type -> docs.v1.ExportDocumentsRequest
	1, // 5: docs.v1.DocumentsService.UploadDocument:output_type -> docs.v1.UploadDocumentResponse
	4, // 6: docs.v1.DocumentsService.SearchDocuments:output_type -> docs.v1.SearchDocumentsResponse
	6, // 7: docs.v1.DocumentsService.ExportDocuments:output_type -> docs.v1.ExportDocumentsResponse
	5, // [5:8] is the sub-list for method output_type
	2, // [2:5] is the sub-list for method input_type
	2, // [2:2] is the sub-list for extension type_name
	2, // [2:2] is the sub-list for extension extendee
	0, // [0:2] is the sub-list for field type_name
}

func init() { file_docs_v1_documents_proto_init() }
func file_docs_v1_documents_proto_init() {
	if File_docs_v1_documents_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_docs_v1_documents_proto_rawDesc), len(file_docs_v1_documents_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_docs_v1_documents_proto_goTypes,
		DependencyIndexes: file_docs_v1_documents_proto_depIdxs,
		MessageInfos:      file_docs_v1_documents_proto_msgTypes,
	}.Build()
	File_docs_v1_documents_proto = out.File
	file_docs_v1_documents_proto_goTypes = nil
	file_docs_v1_documents_proto_depIdxs = nil
}
