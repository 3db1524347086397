// Package ecs 提供最小化的实体-组件存储
//
// 系统通过 EntityManager 查询拥有特定组件组合的实体，组件本身只是纯数据。
package ecs

import (
	"reflect"
	"slices"
)

// EntityID 是实体的唯一标识符
type EntityID uint64

// InvalidEntity 表示"没有实体"，ID 从 1 开始分配
const InvalidEntity EntityID = 0

// EntityManager 管理所有实体和组件
//
// 非线程安全：只允许在游戏主循环所在的 goroutine 中访问。
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> ComponentType -> Component实例
	components map[EntityID]map[reflect.Type]any
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]any),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]any)
	return id
}

// DestroyEntity 标记实体待删除(不立即删除，在帧末由 RemoveMarkedEntities 清理)
// 不存在或已标记的实体忽略
func (em *EntityManager) DestroyEntity(id EntityID) {
	if !em.EntityExists(id) || slices.Contains(em.entitiesToDestroy, id) {
		return
	}
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// EntityCount 返回当前实体数量(含已标记未清理的实体)
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// EntityExists 检查实体是否存在(已标记但尚未清理的实体仍视为存在)
func (em *EntityManager) EntityExists(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// AddComponent 为实体添加组件，同类型组件会被覆盖
func (em *EntityManager) AddComponent(id EntityID, component any) {
	componentType := reflect.TypeOf(component)
	if compMap, exists := em.components[id]; exists {
		compMap[componentType] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// GetComponent 获取实体的特定类型组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (any, bool) {
	comp, found := em.components[id][componentType]
	return comp, found
}

// HasComponent 检查实体是否拥有特定类型组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, found := em.components[id][componentType]
	return found
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetEntitiesWith 查询拥有指定组件类型组合的所有实体
// 返回的ID按升序排列，保证系统每帧的遍历顺序稳定
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
	for id, compMap := range em.components {
		if hasAll(compMap, componentTypes) {
			result = append(result, id)
		}
	}
	slices.Sort(result)
	return result
}

func hasAll(compMap map[reflect.Type]any, componentTypes []reflect.Type) bool {
	for _, ct := range componentTypes {
		if _, found := compMap[ct]; !found {
			return false
		}
	}
	return true
}

// FirstEntityWith 返回拥有指定组件组合、ID 最小的实体
// 没有匹配实体时返回 (InvalidEntity, false)，调用方应据此跳过处理而不是崩溃
func (em *EntityManager) FirstEntityWith(componentTypes ...reflect.Type) (EntityID, bool) {
	entities := em.GetEntitiesWith(componentTypes...)
	if len(entities) == 0 {
		return InvalidEntity, false
	}
	return entities[0], true
}
