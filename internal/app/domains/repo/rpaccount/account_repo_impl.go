package rpaccount

import (
	"context"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"oip/account/internal/app/domains/entity/etaccount"
	"oip/account/internal/app/domains/entity/etprimitive"
	"oip/account/internal/app/infra/persistence/entity"
)

// updatableColumns 更新时写入的列（显式指定以便写入空值）
var updatableColumns = []string{"name", "email", "address", "phone_number", "date_joined"}

// AccountRepositoryImpl 账号仓储实现（GORM）
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// NewAccountRepository 创建账号仓储实例
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create 创建账号，忽略调用方传入的ID
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *etaccount.Account) error {
	po := toPO(account)
	po.ID = 0
	if err := r.db.WithContext(ctx).Create(po).Error; err != nil {
		return err
	}
	// 将数据库生成的ID和默认日期回写到领域对象
	account.ID = po.ID
	account.DateJoined = etprimitive.TruncateDate(time.Time(po.DateJoined))
	return nil
}

// Update 更新账号
func (r *AccountRepositoryImpl) Update(ctx context.Context, account *etaccount.Account) error {
	po := toPO(account)
	return r.db.WithContext(ctx).
		Model(&entity.Account{}).
		Where("id = ?", account.ID).
		Select(updatableColumns).
		Updates(po).Error
}

// Delete 删除账号
func (r *AccountRepositoryImpl) Delete(ctx context.Context, accountID int64) error {
	return r.db.WithContext(ctx).Where("id = ?", accountID).Delete(&entity.Account{}).Error
}

// FindAll 查询全部账号
func (r *AccountRepositoryImpl) FindAll(ctx context.Context) ([]*etaccount.Account, error) {
	var pos []entity.Account
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&pos).Error; err != nil {
		return nil, err
	}
	return toDomainList(pos), nil
}

// FindByID 根据ID查询账号
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, accountID int64) (*etaccount.Account, error) {
	var po entity.Account
	err := r.db.WithContext(ctx).Where("id = ?", accountID).First(&po).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toDomain(&po), nil
}

// FindByName 根据名称查询账号
func (r *AccountRepositoryImpl) FindByName(ctx context.Context, name string) ([]*etaccount.Account, error) {
	var pos []entity.Account
	err := r.db.WithContext(ctx).Where("name = ?", name).Order("id ASC").Find(&pos).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(pos), nil
}

func toPO(account *etaccount.Account) *entity.Account {
	return &entity.Account{
		ID:          account.ID,
		Name:        account.Name,
		Email:       account.Email,
		Address:     account.Address,
		PhoneNumber: account.PhoneNumber,
		DateJoined:  datatypes.Date(account.DateJoined),
	}
}

func toDomain(po *entity.Account) *etaccount.Account {
	return &etaccount.Account{
		ID:          po.ID,
		Name:        po.Name,
		Email:       po.Email,
		Address:     po.Address,
		PhoneNumber: po.PhoneNumber,
		DateJoined:  etprimitive.TruncateDate(time.Time(po.DateJoined)),
	}
}

func toDomainList(pos []entity.Account) []*etaccount.Account {
	accounts := make([]*etaccount.Account, 0, len(pos))
	for i := range pos {
		accounts = append(accounts, toDomain(&pos[i]))
	}
	return accounts
}
